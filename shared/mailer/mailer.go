package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel"
	"boatsandjoy/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TemplateConfirmation = "confirmation"
	TemplateNewBooking   = "new_booking"
	TemplatePaymentError = "payment_error"
)

type Message struct {
	To       string
	Subject  string
	Template string
	Data     any
}

// Mailer delivers transactional booking emails. Sending is best effort: a
// failed delivery never rolls back the booking mutation that triggered it.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type smtpMailer struct {
	dialer    *gomail.Dialer
	sender    string
	templates *template.Template
	otel      otel.Otel
}

type noopMailer struct {
}

func (n *noopMailer) Send(_ context.Context, message Message) error {
	log.Info().
		Str("to", message.To).
		Str("subject", message.Subject).
		Str("template", message.Template).
		Msg("Mail host not configured, skipping email")

	return nil
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	if cfg.Mail.Host == "" {
		log.Warn().Msg("No mail host configured, emails will be logged and dropped")

		return &noopMailer{}
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse email templates")
	}

	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	log.Info().
		Str("host", cfg.Mail.Host).
		Int("port", cfg.Mail.Port).
		Str("sender", cfg.Mail.Sender).
		Msg("SMTP mailer initialized")

	return &smtpMailer{
		dialer:    dialer,
		sender:    cfg.Mail.Sender,
		templates: templates,
		otel:      ot,
	}
}

func (m *smtpMailer) Send(ctx context.Context, message Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mail.template", message.Template)

	body, err := m.render(message.Template, message.Data)
	if err != nil {
		return err
	}

	email := gomail.NewMessage()
	email.SetHeader("From", m.sender)
	email.SetHeader("To", message.To)
	email.SetHeader("Subject", message.Subject)
	email.SetBody("text/html", body)

	if err = m.dialer.DialAndSend(email); err != nil {
		log.Error().Err(err).Str("template", message.Template).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *smtpMailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := m.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render email template")

		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}

	return buf.String(), nil
}
