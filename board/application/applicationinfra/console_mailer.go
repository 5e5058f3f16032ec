package applicationinfra

import (
	"context"
	"strings"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/pkg/logx"
)

// ConsoleMailer implements the Mailer interface by printing messages to the
// log. Meant for local development.
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console-based mailer
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// Send logs the message instead of delivering it
func (m *ConsoleMailer) Send(ctx context.Context, msg application.Message) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.FileName)
	}

	logx.Infof("APPLICATION EMAIL to=%s from=%s subject=%q attachments=[%s]\n%s",
		msg.ToEmail, msg.FromEmail, msg.Subject, strings.Join(names, ", "), msg.TextBody)
	return nil
}

var _ application.Mailer = (*ConsoleMailer)(nil)
