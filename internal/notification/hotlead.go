package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type hotLeadEmailData struct {
	Title         string
	Heading       string
	Score         int
	Tier          string
	Lift          int
	CompanyName   string
	CompanyDomain string
	ContactName   string
	Reasons       []string
}

// Notifier sends hot-lead alerts. A nil Sender disables delivery, which is
// how deployments without SMTP run.
type Notifier struct {
	sender Sender
	log    *logger.Logger
}

// NewNotifier creates a hot-lead notifier.
func NewNotifier(sender Sender, log *logger.Logger) *Notifier {
	return &Notifier{sender: sender, log: log}
}

// NotifyHotLead emails the tenant when a lead reaches the Hot tier. Failures
// are logged but never fail the scoring pipeline.
func (n *Notifier) NotifyHotLead(ctx context.Context, toEmail string, record domain.Record, result scoring.Result) {
	if n.sender == nil || toEmail == "" {
		return
	}
	if result.Tier != scoring.TierHot {
		return
	}

	data := hotLeadEmailData{
		Title:         "Hot lead alert",
		Heading:       "Hot lead alert",
		Score:         result.Score,
		Tier:          string(result.Tier),
		Lift:          result.Lift,
		CompanyName:   stringOr(record.CompanyName, "unknown"),
		CompanyDomain: record.CompanyDomain,
		ContactName:   contactName(record),
		Reasons:       result.Reasons,
	}

	content, err := renderTemplate("hot_lead.html", data)
	if err != nil {
		n.log.Error("failed to render hot lead email", "error", err)
		return
	}

	subject := fmt.Sprintf("Hot lead: %s scored %d", data.CompanyName, result.Score)
	if err := n.sender.Send(ctx, toEmail, subject, content); err != nil {
		n.log.Error("failed to send hot lead email", "error", err, "to", toEmail)
	}
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func contactName(record domain.Record) string {
	parts := make([]string, 0, 2)
	if record.ContactFirstName != nil {
		parts = append(parts, *record.ContactFirstName)
	}
	if record.ContactLastName != nil {
		parts = append(parts, *record.ContactLastName)
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, " ")
}
