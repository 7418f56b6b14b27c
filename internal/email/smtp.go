package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"go.uber.org/zap"
)

var passkeyTemplate = template.Must(template.New("passkey").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your PulseSpend Passkey</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>PulseSpend</h2>
    <p>Use this passkey to verify your email address:</p>
    <p style="font-size: 32px; font-weight: bold; letter-spacing: 6px;">{{.Passkey}}</p>
    <p>The passkey expires in 5 minutes. If you did not request it, ignore this email.</p>
</body>
</html>
`))

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPSender delivers passkey emails over plain SMTP with STARTTLS
// handled by the server. It implements domain.EmailSender.
type SMTPSender struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

func (s *SMTPSender) SendPasskey(ctx context.Context, to, passkey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := passkeyTemplate.Execute(&body, struct{ Passkey string }{passkey}); err != nil {
		return fmt.Errorf("failed to render passkey email: %w", err)
	}

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString("Subject: Your PulseSpend Passkey\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send passkey email: %w", err)
	}

	s.logger.Info("passkey email sent", zap.String("to", to))
	return nil
}
