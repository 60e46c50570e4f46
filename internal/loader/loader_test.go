package loader

import (
	"CurrencyConverter/internal/model"
	"context"
	"errors"
	"testing"
)

type MockSource struct {
	CurrenciesFunc func(ctx context.Context) ([]model.CurrencyCode, error)
	calls          int
}

func (m *MockSource) Currencies(ctx context.Context) ([]model.CurrencyCode, error) {
	m.calls++
	return m.CurrenciesFunc(ctx)
}

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObserveCurrencyLoad(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func TestLoader_LoadsOnce(t *testing.T) {
	src := &MockSource{
		CurrenciesFunc: func(ctx context.Context) ([]model.CurrencyCode, error) {
			return []model.CurrencyCode{"USD", "EUR", "INR", "SEK"}, nil
		},
	}
	obs := &recordingObserver{}
	l := New(src, obs)

	if got := l.Currencies(); len(got) != 0 {
		t.Fatalf("expected empty list before load, got %v", got)
	}

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	if src.calls != 1 {
		t.Fatalf("expected one fetch, got %d", src.calls)
	}
	if len(first) != 4 || first[0] != "USD" || first[3] != "SEK" {
		t.Errorf("unexpected list: %v", first)
	}
	if len(second) != 4 {
		t.Errorf("expected cached list, got %v", second)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != "success" {
		t.Errorf("unexpected outcomes: %v", obs.outcomes)
	}
}

func TestLoader_FailureLeavesListEmpty(t *testing.T) {
	src := &MockSource{
		CurrenciesFunc: func(ctx context.Context) ([]model.CurrencyCode, error) {
			return nil, errors.New("boom")
		},
	}
	obs := &recordingObserver{}
	l := New(src, obs)

	if got := l.Load(context.Background()); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	l.Load(context.Background())
	if src.calls != 1 {
		t.Errorf("failed load must not be retried, got %d calls", src.calls)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != "fetch_failure" {
		t.Errorf("unexpected outcomes: %v", obs.outcomes)
	}
}

func TestLoader_DropsDuplicates(t *testing.T) {
	src := &MockSource{
		CurrenciesFunc: func(ctx context.Context) ([]model.CurrencyCode, error) {
			return []model.CurrencyCode{"USD", "USD", "", "EUR"}, nil
		},
	}
	l := New(src, nil)

	got := l.Load(context.Background())
	if len(got) != 2 || got[0] != "USD" || got[1] != "EUR" {
		t.Errorf("unexpected list: %v", got)
	}
}

func TestLoader_CurrenciesReturnsCopy(t *testing.T) {
	src := &MockSource{
		CurrenciesFunc: func(ctx context.Context) ([]model.CurrencyCode, error) {
			return []model.CurrencyCode{"USD"}, nil
		},
	}
	l := New(src, nil)
	got := l.Load(context.Background())
	got[0] = "XXX"

	if l.Currencies()[0] != "USD" {
		t.Error("loaded list must be immutable")
	}
}
