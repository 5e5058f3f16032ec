package applicationinfra

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSendGrid struct {
	got  *mail.SGMailV3
	resp *rest.Response
	err  error
}

func (f *fakeSendGrid) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.got = email
	return f.resp, f.err
}

func testMessage() application.Message {
	return application.Message{
		FromName:  "Job Board",
		FromEmail: "noreply@board.example.com",
		ToEmail:   "hiring@board.example.com",
		ReplyTo:   "ada@example.com",
		Subject:   "New application for Backend Engineer",
		TextBody:  "Name: Ada",
		HTMLBody:  "<p>Name: Ada</p>",
		Attachments: []application.Attachment{
			{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		},
	}
}

func TestSendGridMailerBuildsMail(t *testing.T) {
	fake := &fakeSendGrid{resp: &rest.Response{StatusCode: 202}}
	m := NewSendGridMailerWithClient(fake)

	require.NoError(t, m.Send(context.Background(), testMessage()))
	require.NotNil(t, fake.got)

	assert.Equal(t, "noreply@board.example.com", fake.got.From.Address)
	assert.Equal(t, "New application for Backend Engineer", fake.got.Subject)
	require.Len(t, fake.got.Personalizations, 1)
	require.Len(t, fake.got.Personalizations[0].To, 1)
	assert.Equal(t, "hiring@board.example.com", fake.got.Personalizations[0].To[0].Address)
	require.NotNil(t, fake.got.ReplyTo)
	assert.Equal(t, "ada@example.com", fake.got.ReplyTo.Address)

	require.Len(t, fake.got.Attachments, 1)
	assert.Equal(t, "cv.pdf", fake.got.Attachments[0].Filename)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF")), fake.got.Attachments[0].Content)
}

func TestSendGridMailerErrors(t *testing.T) {
	rejected := &fakeSendGrid{resp: &rest.Response{StatusCode: 401, Body: "bad key"}}
	assert.Error(t, NewSendGridMailerWithClient(rejected).Send(context.Background(), testMessage()))

	broken := &fakeSendGrid{err: errors.New("dial tcp: timeout")}
	assert.Error(t, NewSendGridMailerWithClient(broken).Send(context.Background(), testMessage()))
}

func TestConsoleMailer(t *testing.T) {
	assert.NoError(t, NewConsoleMailer().Send(context.Background(), testMessage()))
}
