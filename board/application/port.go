package application

import "context"

// Message is a composed notification email
type Message struct {
	FromName    string
	FromEmail   string
	ToEmail     string
	ReplyTo     string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers a message through an email provider. There is no retry:
// an error means the message is lost.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
