package applicationinfra

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridClient is the subset of *sendgrid.Client used by the mailer
type SendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer delivers messages through the SendGrid v3 API
type SendGridMailer struct {
	client SendGridClient
}

// NewSendGridMailer creates a mailer authenticated with apiKey
func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

// NewSendGridMailerWithClient is used when the client is built elsewhere
func NewSendGridMailerWithClient(client SendGridClient) *SendGridMailer {
	return &SendGridMailer{client: client}
}

func (m *SendGridMailer) Send(ctx context.Context, msg application.Message) error {
	resp, err := m.client.SendWithContext(ctx, buildSGMail(msg))
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func buildSGMail(msg application.Message) *mail.SGMailV3 {
	from := mail.NewEmail(msg.FromName, msg.FromEmail)
	to := mail.NewEmail("", msg.ToEmail)

	m := mail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, msg.HTMLBody)
	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	for _, att := range msg.Attachments {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Data))
		a.SetType(att.ContentType)
		a.SetFilename(att.FileName)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}
	return m
}

var _ application.Mailer = (*SendGridMailer)(nil)
