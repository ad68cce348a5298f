// Package mail sends email over SMTP with a small fluent builder:
//
//	err := mail.New().
//		To("info@example.com").
//		Subject("Yeni iletişim mesajı").
//		Body(text).
//		Send()
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/isipark/siteapi/config"
)

// Message is a pending email. Zero value is not usable; use New.
type Message struct {
	from    string
	to      []string
	subject string
	body    string
	html    bool
}

func New() *Message {
	return &Message{
		from: config.Get("MAIL_FROM", "no-reply@localhost"),
	}
}

func (m *Message) From(addr string) *Message {
	m.from = addr
	return m
}

func (m *Message) To(addrs ...string) *Message {
	m.to = append(m.to, addrs...)
	return m
}

func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets a plain-text body.
func (m *Message) Body(s string) *Message {
	m.body = s
	m.html = false
	return m
}

// HTML sets an HTML body.
func (m *Message) HTML(s string) *Message {
	m.body = s
	m.html = true
	return m
}

// Send delivers the message through the configured SMTP server.
func (m *Message) Send() error {
	if len(m.to) == 0 {
		return fmt.Errorf("mail: no recipients")
	}

	host := config.Get("MAIL_HOST", "localhost")
	port := config.Get("MAIL_PORT", "25")
	username := config.Get("MAIL_USERNAME", "")
	password := config.Get("MAIL_PASSWORD", "")

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	contentType := "text/plain; charset=UTF-8"
	if m.html {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "\r\n%s\r\n", m.body)

	addr := host + ":" + port
	if err := smtp.SendMail(addr, auth, m.from, m.to, []byte(b.String())); err != nil {
		return fmt.Errorf("mail: send via %s: %w", addr, err)
	}
	return nil
}
