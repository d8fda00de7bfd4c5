package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"vertex-leisure/pkg/utils"
)

// Mailer sends HTML mail over plain SMTP. Callers that do not want to block
// on delivery should invoke Send from a goroutine and log the error.
type Mailer struct {
	host string
	port int
	auth smtp.Auth
	from string
}

func NewMailer(config utils.EmailConfig) Mailer {
	var auth smtp.Auth
	if config.User != "" {
		auth = smtp.PlainAuth("", config.User, config.Password, config.Host)
	}
	return Mailer{
		host: config.Host,
		port: config.Port,
		auth: auth,
		from: config.From,
	}
}

func (m Mailer) Send(recipient, subject, htmlBody string) error {
	var message strings.Builder
	message.WriteString("From: " + m.from + "\r\n")
	message.WriteString("To: " + recipient + "\r\n")
	message.WriteString("Subject: " + subject + "\r\n")
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return smtp.SendMail(addr, m.auth, m.from, []string{recipient}, []byte(message.String()))
}
