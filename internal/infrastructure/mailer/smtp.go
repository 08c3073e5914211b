package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/ecolvin/tracelink-api/pkg/config"
	"github.com/ecolvin/tracelink-api/pkg/logger"
)

// SMTPMailer envía correos vía SMTP con gomail. Si el transporte no está
// configurado (host/puerto vacíos), Send es un no-op silencioso: se registra
// y no es un error.
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send envía un correo a los destinatarios indicados con cuerpo texto y HTML.
func (m *SMTPMailer) Send(to []string, subject, text, html string) error {
	if !m.cfg.Enabled() {
		m.log.Debug().Str("subject", subject).Msg("SMTP no configurado, se omite envío")
		return nil
	}
	if len(to) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
