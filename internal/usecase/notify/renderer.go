package notify

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"booking-reconciler/internal/domain/booking"
	"booking-reconciler/internal/usecase/readmodel"
)

type ConfirmationData struct {
	Role            Role
	RecipientName   string
	BookingNumber   string
	ProviderName    string
	GuardianName    string
	ParticipantName string
	SessionDate     string
	StartTime       string
	Location        string
	PackageType     string
	TotalSessions   int
	Total           string
	Payout          string
	Currency        string
}

func NewConfirmationData(role Role, b *readmodel.BookingRM) ConfirmationData {
	recipient := b.GuardianName
	if role == RoleProvider {
		recipient = b.ProviderName
	}
	return ConfirmationData{
		Role:            role,
		RecipientName:   recipient,
		BookingNumber:   b.Number,
		ProviderName:    b.ProviderName,
		GuardianName:    b.GuardianName,
		ParticipantName: b.ParticipantName,
		SessionDate:     b.SessionDate,
		StartTime:       b.StartTime,
		Location:        b.Location,
		PackageType:     b.PackageType,
		TotalSessions:   b.TotalSessions,
		Total:           booking.MustMoney(max(b.TotalCents, 0)).String(),
		Payout:          booking.MustMoney(max(b.PayoutCents, 0)).String(),
		Currency:        strings.ToUpper(b.Currency),
	}
}

type Renderer interface {
	Render(data ConfirmationData) (subject, body string, err error)
}

const payerTemplate = `Hi {{.RecipientName}},

Your booking {{.BookingNumber}} with {{.ProviderName}} is confirmed.

Participant: {{.ParticipantName}}
{{- if .SessionDate}}
Date: {{.SessionDate}}{{if .StartTime}} at {{.StartTime}}{{end}}
{{- end}}
{{- if .Location}}
Location: {{.Location}}
{{- end}}
Package: {{.PackageType}} ({{.TotalSessions}} {{if eq .TotalSessions 1}}session{{else}}sessions{{end}})
Total paid: {{.Total}} {{.Currency}}

Keep this number for any questions about your booking.
`

const providerTemplate = `Hi {{.RecipientName}},

You have a new booking {{.BookingNumber}} from {{.GuardianName}}.

Participant: {{.ParticipantName}}
{{- if .SessionDate}}
Date: {{.SessionDate}}{{if .StartTime}} at {{.StartTime}}{{end}}
{{- end}}
{{- if .Location}}
Location: {{.Location}}
{{- end}}
Package: {{.PackageType}} ({{.TotalSessions}} {{if eq .TotalSessions 1}}session{{else}}sessions{{end}})
Your payout: {{.Payout}} {{.Currency}}
`

type TemplateRenderer struct {
	templates map[Role]*template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: map[Role]*template.Template{
			RolePayer:    template.Must(template.New("payer").Parse(payerTemplate)),
			RoleProvider: template.Must(template.New("provider").Parse(providerTemplate)),
		},
	}
}

func (r *TemplateRenderer) Render(data ConfirmationData) (string, string, error) {
	tmpl, ok := r.templates[data.Role]
	if !ok {
		return "", "", fmt.Errorf("no template for role %q", data.Role)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s confirmation: %w", data.Role, err)
	}

	subject := "Booking confirmed: " + data.BookingNumber
	if data.Role == RoleProvider {
		subject = "New booking: " + data.BookingNumber
	}
	return subject, buf.String(), nil
}
