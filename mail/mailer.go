package mail

import (
	"fmt"

	"github.com/humspot/api-go/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional notifications that follow submission
// lifecycle events. Delivery is best-effort: callers fire it after commit
// and only log failures.
type Mailer interface {
	SubmissionReceived(to, activityName string) error
	SubmissionApproved(to, activityName, message string) error
	SubmissionDenied(to, activityName, reason string) error
}

type SMTPMailer struct {
	cfg    *config.MailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SubmissionReceived(to, activityName string) error {
	body := fmt.Sprintf(
		"<p>Thanks for your submission!</p><p><b>%s</b> has been received and is awaiting review by our team.</p>",
		activityName)
	return m.send(to, "Humspot: submission received", body)
}

func (m *SMTPMailer) SubmissionApproved(to, activityName, message string) error {
	body := fmt.Sprintf("<p>Good news! <b>%s</b> has been approved and is now live on Humspot.</p>", activityName)
	if message != "" {
		body += fmt.Sprintf("<p>Note from the review team: %s</p>", message)
	}
	return m.send(to, "Humspot: submission approved", body)
}

func (m *SMTPMailer) SubmissionDenied(to, activityName, reason string) error {
	body := fmt.Sprintf("<p>Unfortunately <b>%s</b> was not approved for publication.</p>", activityName)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	return m.send(to, "Humspot: submission update", body)
}
