package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Provider sends the account-lifecycle emails. A mock implementation
// is substituted in tests.
type Provider interface {
	SendConfirmation(to, name, token string) error
	SendPasswordReset(to, name, token string) error
}

// SMTPProvider sends mail through SMTP using gomail.
type SMTPProvider struct {
	cfg Config
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}
	return &SMTPProvider{cfg: cfg}, nil
}

func (p *SMTPProvider) SendConfirmation(to, name, token string) error {
	body, err := renderConfirm(p.cfg.BaseURL, name, token)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return p.send(to, "Confirma tu cuenta en BienesRaices.com", body)
}

func (p *SMTPProvider) SendPasswordReset(to, name, token string) error {
	body, err := renderReset(p.cfg.BaseURL, name, token)
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}
	return p.send(to, "Reestablece tu password en BienesRaices.com", body)
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.SMTPHost,
		p.cfg.SMTPPort,
		p.cfg.SMTPUsername,
		p.cfg.SMTPPassword,
	)

	return d.DialAndSend(m)
}
