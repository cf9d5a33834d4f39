// Package mailer sends transactional email over SMTP.
package mailer

import (
	"io"

	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file attached to a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer sends an HTML message with an optional attachment.
type Mailer interface {
	Send(to, subject, htmlBody string, attachment *Attachment) error
}

type smtpMailer struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func New(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		cfg: cfg,
		log: log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(to, subject, htmlBody string, attachment *Attachment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if attachment != nil {
		content := attachment.Content
		msg.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return err
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
