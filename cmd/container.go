package main

import (
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/application/applicationapi"
	"github.com/Abraxas-365/jobboard/board/application/applicationinfra"
	"github.com/Abraxas-365/jobboard/board/application/applicationsrv"
	"github.com/Abraxas-365/jobboard/board/job/jobapi"
	"github.com/Abraxas-365/jobboard/board/job/jobinfra"
	"github.com/Abraxas-365/jobboard/board/job/jobsrv"
	"github.com/Abraxas-365/jobboard/pkg/fsx"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxmem"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxredis"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxsql"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Container holds all application dependencies
type Container struct {
	Config Config

	// Infrastructure
	FileSystem fsx.FileSystem
	closers    []io.Closer

	// Services
	JobService *jobsrv.JobService
	Notifier   *applicationsrv.Notifier

	// API Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Middleware
	AdminCredential auth.CredentialChecker
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

// Close releases connections opened by the container
func (c *Container) Close() {
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			logx.Warnf("close: %v", err)
		}
	}
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	switch cfg.StoreDriver {
	case "s3":
		awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(cfg.AWSRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		if cfg.AWSBucket == "" {
			logx.Fatalf("AWS_BUCKET is required for the s3 store")
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(awsCfg), cfg.AWSBucket, cfg.StoreKeyPrefix)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		if _, err := client.Ping(context.Background()).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, client)
		c.FileSystem = fsxredis.NewRedisFileSystem(client, cfg.StoreKeyPrefix)

	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			logx.Fatalf("Failed to connect to database: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
		c.closers = append(c.closers, db)
		c.FileSystem = c.sqlFileSystem(db)

	case "sqlite":
		db, err := sqlx.Connect("sqlite", cfg.SQLitePath)
		if err != nil {
			logx.Fatalf("Failed to open sqlite %s: %v", cfg.SQLitePath, err)
		}
		db.SetMaxOpenConns(1)
		c.closers = append(c.closers, db)
		c.FileSystem = c.sqlFileSystem(db)

	case "memory":
		logx.Warn("STORE_DRIVER=memory: the catalog is lost on restart")
		c.FileSystem = fsxmem.NewMemoryFileSystem()

	default:
		logx.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	logx.Infof("catalog store: %s", cfg.StoreDriver)
}

func (c *Container) sqlFileSystem(db *sqlx.DB) fsx.FileSystem {
	fs := fsxsql.NewSQLFileSystem(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fs.EnsureSchema(ctx); err != nil {
		logx.Fatalf("prepare documents table: %v", err)
	}
	return fs
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Admin credential ---
	c.AdminCredential = newCredentialChecker(cfg)

	// --- Catalog ---
	jobRepo := jobinfra.NewDocumentJobRepository(c.FileSystem)
	c.JobService = jobsrv.NewJobService(jobRepo)

	// --- Notifier ---
	var mailer application.Mailer
	switch cfg.MailDriver {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			logx.Warn("SENDGRID_API_KEY is not set, every application will fail to send")
		}
		mailer = applicationinfra.NewSendGridMailer(cfg.SendGridAPIKey)
	default:
		logx.Warn("MAIL_DRIVER=console: applications are only logged")
		mailer = applicationinfra.NewConsoleMailer()
	}
	if cfg.ApplyToEmail == "" || cfg.ApplyFromEmail == "" {
		logx.Warn("APPLY_TO_EMAIL or APPLY_FROM_EMAIL is not set")
	}

	policy := application.DefaultPolicy()
	policy.RequireJobTitle = cfg.RequireJobTitle
	c.Notifier = applicationsrv.NewNotifier(mailer, application.Addresses{
		FromName:  cfg.ApplyFromName,
		FromEmail: cfg.ApplyFromEmail,
		ToEmail:   cfg.ApplyToEmail,
	}, policy)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.Notifier)
}

func newCredentialChecker(cfg Config) auth.CredentialChecker {
	switch cfg.AdminAuthMode {
	case "bcrypt":
		if cfg.AdminTokenHash == "" {
			logx.Warn("ADMIN_TOKEN_HASH is not set, catalog changes are disabled")
		}
		return auth.NewBcryptTokenChecker(cfg.AdminTokenHash)
	case "jwt":
		if cfg.AdminJWTSecret == "" {
			logx.Warn("ADMIN_JWT_SECRET is not set, catalog changes are disabled")
		}
		return auth.NewJWTChecker(cfg.AdminJWTSecret, cfg.AdminJWTIssuer)
	default:
		if cfg.AdminToken == "" {
			logx.Warn("ADMIN_TOKEN is not set, catalog changes are disabled")
		}
		return auth.NewStaticTokenChecker(cfg.AdminToken)
	}
}
