package mailer

import (
	"context"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel/mocks"
)

type templateBooking struct {
	CustomerName            string
	CustomerTelephoneNumber string
	Locator                 string
	Price                   string
	Extras                  string
}

type templateBoat struct {
	Name string
}

type templateData struct {
	Booking  templateBooking
	Boat     templateBoat
	Currency string
}

func newTemplates(t *testing.T) *template.Template {
	t.Helper()

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	require.NoError(t, err)

	return templates
}

func TestRenderTemplates(t *testing.T) {
	m := &smtpMailer{templates: newTemplates(t), otel: mocks.NewOtel()}

	data := templateData{
		Booking: templateBooking{
			CustomerName:            "Jane",
			CustomerTelephoneNumber: "+34600000000",
			Locator:                 "AB12CD34",
			Price:                   "50.00",
			Extras:                  "snorkel kit",
		},
		Boat:     templateBoat{Name: "Lolita"},
		Currency: "eur",
	}

	tests := []struct {
		name     string
		template string
		contains []string
	}{
		{
			name:     "confirmation greets the customer with the locator",
			template: TemplateConfirmation,
			contains: []string{"Jane", "AB12CD34", "Lolita", "50.00"},
		},
		{
			// html/template escapes "+" to &#43; in the rendered body.
			name:     "new booking notification carries the locator",
			template: TemplateNewBooking,
			contains: []string{"AB12CD34", "Jane", "&#43;34600000000"},
		},
		{
			name:     "payment error notification carries the locator",
			template: TemplatePaymentError,
			contains: []string{"AB12CD34"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := m.render(tt.template, data)
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, body, fragment)
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	m := &smtpMailer{templates: newTemplates(t), otel: mocks.NewOtel()}

	_, err := m.render("nonexistent", nil)
	require.Error(t, err)
}

func TestNewWithoutMailHost(t *testing.T) {
	m := New(&config.Config{}, mocks.NewOtel())

	err := m.Send(context.Background(), Message{
		To:       "a@b.com",
		Template: TemplateConfirmation,
	})
	require.NoError(t, err)
}
