package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/logger"
)

type stubProvider struct {
	record *domain.Record
	calls  int
}

func (s *stubProvider) Lookup(_ context.Context, _ string, _ *string) (*domain.Record, error) {
	s.calls++
	return s.record, nil
}

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestEnrich_CacheHitSkipsProvider(t *testing.T) {
	provider := &stubProvider{record: &domain.Record{
		CompanyDomain: "acme.com",
		CompanyName:   domain.StringPtr("Acme"),
	}}
	svc := New(provider, newCacheClient(t), time.Minute, logger.New("test"))

	first, err := svc.Enrich(context.Background(), "acme.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || *first.CompanyName != "Acme" {
		t.Fatalf("expected provider record, got %v", first)
	}

	second, err := svc.Enrich(context.Background(), "acme.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second == nil || *second.CompanyName != "Acme" {
		t.Fatalf("expected cached record, got %v", second)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}
}

func TestEnrich_NegativeResultsAreCached(t *testing.T) {
	provider := &stubProvider{record: nil}
	svc := New(provider, newCacheClient(t), time.Minute, logger.New("test"))

	for i := 0; i < 3; i++ {
		record, err := svc.Enrich(context.Background(), "unknown.io", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record != nil {
			t.Fatalf("expected nil record, got %v", record)
		}
	}
	if provider.calls != 1 {
		t.Fatalf("expected the negative result to be cached after one call, got %d", provider.calls)
	}
}

func TestEnrich_NilCacheAlwaysHitsProvider(t *testing.T) {
	provider := &stubProvider{record: &domain.Record{CompanyDomain: "acme.com"}}
	svc := New(provider, nil, time.Minute, logger.New("test"))

	for i := 0; i < 2; i++ {
		if _, err := svc.Enrich(context.Background(), "acme.com", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if provider.calls != 2 {
		t.Fatalf("expected every lookup to hit the provider, got %d calls", provider.calls)
	}
}

func TestEnrich_EmptyDomainIsANoOp(t *testing.T) {
	provider := &stubProvider{}
	svc := New(provider, nil, time.Minute, logger.New("test"))

	record, err := svc.Enrich(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for empty domain, got %v", record)
	}
	if provider.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", provider.calls)
	}
}

func TestEnrich_CacheEntriesExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	provider := &stubProvider{record: &domain.Record{CompanyDomain: "acme.com"}}
	svc := New(provider, client, time.Minute, logger.New("test"))

	if _, err := svc.Enrich(context.Background(), "acme.com", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := svc.Enrich(context.Background(), "acme.com", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected a fresh provider call after expiry, got %d", provider.calls)
	}
}
