package notification

import (
	"context"
	"strings"
	"testing"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/logger"
)

type captureSender struct {
	to      string
	subject string
	body    string
	calls   int
}

func (c *captureSender) Send(_ context.Context, toEmail, subject, htmlContent string) error {
	c.calls++
	c.to = toEmail
	c.subject = subject
	c.body = htmlContent
	return nil
}

func hotResult() scoring.Result {
	return scoring.Result{
		Score:   85,
		Tier:    scoring.TierHot,
		Lift:    35,
		Reasons: []string{"business email domain acme.com", "urgency ThisMonth"},
	}
}

func TestNotifyHotLead_SendsRenderedEmail(t *testing.T) {
	sender := &captureSender{}
	notifier := NewNotifier(sender, logger.New("test"))

	record := domain.Record{
		CompanyDomain:    "acme.com",
		CompanyName:      domain.StringPtr("Acme"),
		ContactFirstName: domain.StringPtr("John"),
		ContactLastName:  domain.StringPtr("Doe"),
	}

	notifier.NotifyHotLead(context.Background(), "sales@tenant.io", record, hotResult())

	if sender.calls != 1 {
		t.Fatalf("expected one send, got %d", sender.calls)
	}
	if sender.to != "sales@tenant.io" {
		t.Fatalf("expected recipient sales@tenant.io, got %s", sender.to)
	}
	if sender.subject != "Hot lead: Acme scored 85" {
		t.Fatalf("unexpected subject %q", sender.subject)
	}
	if !strings.Contains(sender.body, "acme.com") {
		t.Fatal("expected company domain in the email body")
	}
	if !strings.Contains(sender.body, "business email domain acme.com") {
		t.Fatal("expected reasons in the email body")
	}
}

func TestNotifyHotLead_SkipsNonHotTiers(t *testing.T) {
	sender := &captureSender{}
	notifier := NewNotifier(sender, logger.New("test"))

	result := hotResult()
	result.Tier = scoring.TierWarm

	notifier.NotifyHotLead(context.Background(), "sales@tenant.io", domain.Record{CompanyDomain: "acme.com"}, result)

	if sender.calls != 0 {
		t.Fatalf("expected no send for a warm lead, got %d", sender.calls)
	}
}

func TestNotifyHotLead_SkipsWithoutRecipient(t *testing.T) {
	sender := &captureSender{}
	notifier := NewNotifier(sender, logger.New("test"))

	notifier.NotifyHotLead(context.Background(), "", domain.Record{CompanyDomain: "acme.com"}, hotResult())

	if sender.calls != 0 {
		t.Fatalf("expected no send without a recipient, got %d", sender.calls)
	}
}

func TestNotifyHotLead_FallsBackToUnknownCompanyName(t *testing.T) {
	sender := &captureSender{}
	notifier := NewNotifier(sender, logger.New("test"))

	notifier.NotifyHotLead(context.Background(), "sales@tenant.io", domain.Record{CompanyDomain: "acme.com"}, hotResult())

	if sender.subject != "Hot lead: unknown scored 85" {
		t.Fatalf("unexpected subject %q", sender.subject)
	}
}
