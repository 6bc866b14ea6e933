package mailer

import (
	"fmt"
	"net/smtp"
)

// Client sends mail through a single SMTP relay using PLAIN auth over
// STARTTLS. Each Send is one synchronous SMTP conversation.
type Client struct {
	cfg  Config
	addr string
	auth smtp.Auth
}

// Config holds SMTP relay connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewClient creates a new SMTP client. No connection is opened until Send.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
}

// Send delivers one message to one recipient. smtp.SendMail upgrades to TLS
// via STARTTLS when the relay advertises it.
func (c *Client) Send(to, subject, body string) error {
	msg := buildMessage(c.cfg.Username, to, subject, body)
	if err := smtp.SendMail(c.addr, c.auth, c.cfg.Username, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", c.addr, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body))
}
