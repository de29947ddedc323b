package email

import "errors"

// Config holds SMTP settings and the base URL used in links.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	// BaseURL is the externally reachable address of the app,
	// e.g. http://localhost:3000.
	BaseURL string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return errors.New("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return errors.New("smtp port is required")
	}
	if c.FromEmail == "" {
		return errors.New("from email is required")
	}
	return nil
}
