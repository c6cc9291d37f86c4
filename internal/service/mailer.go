package service

import (
	"fmt"

	"github.com/Dixit-Goti/hospital-management/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers outbound notifications. Callers treat delivery as
// best-effort: a send failure must never fail the surrounding operation.
type Mailer interface {
	SendWelcome(to, firstName, tempPassword string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendWelcome(to, firstName, tempPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to HealthCare App")
	msg.SetBody("text/html", welcomeEmailHTML(firstName, tempPassword))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

func welcomeEmailHTML(firstName, tempPassword string) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, %s!</h2>
    <p>Your patient account has been created by our clinic staff.</p>
    <p>You can sign in with your email address and the temporary password below:</p>
    <p style="font-size: 18px; font-weight: bold;">%s</p>
    <p>Please change your password after your first login.</p>
    <p>— HealthCare Team</p>
  </body>
</html>`, firstName, tempPassword)
}
