package utils

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendContactEmail пересылает сообщение контактной формы на почту поддержки.
func SendContactEmail(name, fromEmail, subject, message, source, smtpHost, smtpPort, smtpUser, smtpPass, contactTo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", contactTo)
	m.SetHeader("Reply-To", fromEmail)
	m.SetHeader("Subject", fmt.Sprintf("Contact form submission from %s", name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nSubject: %s\nMessage: %s\nSource: %s\n",
		name, fromEmail, subject, message, source,
	))

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
