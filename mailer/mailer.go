// Package mailer sends mail through the SMTP server configured in the
// admin panel.
package mailer

import (
	"fmt"
	"net/smtp"

	"tcgstore/models"
)

// Send delivers a plain-text mail using the persisted SMTP settings.
// The stored password must already be decrypted by the caller.
func Send(settings *models.SMTPSettings, password, to, subject, body string) error {
	if settings.Host == "" || settings.FromAddress == "" {
		return fmt.Errorf("SMTP settings incomplete")
	}

	addr := fmt.Sprintf("%s:%d", settings.Host, settings.Port)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		settings.FromAddress, to, subject, body,
	))

	var auth smtp.Auth
	if settings.Username != "" {
		auth = smtp.PlainAuth("", settings.Username, password, settings.Host)
	}
	return smtp.SendMail(addr, auth, settings.FromAddress, []string{to}, msg)
}
