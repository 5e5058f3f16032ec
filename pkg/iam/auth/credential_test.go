package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenChecker(t *testing.T) {
	ctx := context.Background()
	c := NewStaticTokenChecker("s3cret")

	assert.NoError(t, c.Check(ctx, "s3cret"))
	assert.Error(t, c.Check(ctx, "wrong"))
	assert.Error(t, c.Check(ctx, ""))
}

func TestCheckersFailClosedWithoutSecret(t *testing.T) {
	ctx := context.Background()
	checkers := map[string]CredentialChecker{
		"static": NewStaticTokenChecker(""),
		"bcrypt": NewBcryptTokenChecker(""),
		"jwt":    NewJWTChecker("", ""),
	}
	for name, c := range checkers {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, c.Check(ctx, ""))
			assert.Error(t, c.Check(ctx, "anything"))
		})
	}
}

func TestBcryptTokenChecker(t *testing.T) {
	hash, err := HashToken("s3cret")
	require.NoError(t, err)

	c := NewBcryptTokenChecker(hash)
	assert.NoError(t, c.Check(context.Background(), "s3cret"))

	err = c.Check(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestJWTChecker(t *testing.T) {
	ctx := context.Background()
	c := NewJWTChecker("signing-key", "jobboard")

	token, err := IssueAdminToken("signing-key", "jobboard", "admin", time.Hour)
	require.NoError(t, err)
	assert.NoError(t, c.Check(ctx, token))

	otherKey, err := IssueAdminToken("other-key", "jobboard", "admin", time.Hour)
	require.NoError(t, err)
	assert.Error(t, c.Check(ctx, otherKey))

	expired, err := IssueAdminToken("signing-key", "jobboard", "admin", -time.Minute)
	require.NoError(t, err)
	assert.Error(t, c.Check(ctx, expired))

	wrongIssuer, err := IssueAdminToken("signing-key", "someone-else", "admin", time.Hour)
	require.NoError(t, err)
	assert.Error(t, c.Check(ctx, wrongIssuer))

	assert.Error(t, c.Check(ctx, "not-a-jwt"))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "", BearerToken("bearer abc"))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
}

func TestRequireCredential(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Post("/guarded", RequireCredential(NewStaticTokenChecker("s3cret")), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
