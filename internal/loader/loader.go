package loader

import (
	"CurrencyConverter/internal/model"
	"context"
	"log"
	"sync"
)

type CurrencySource interface {
	Currencies(ctx context.Context) ([]model.CurrencyCode, error)
}

type Observer interface {
	ObserveCurrencyLoad(outcome string)
}

// Loader fetches the supported currency list once per process.
type Loader struct {
	source   CurrencySource
	observer Observer

	once       sync.Once
	mu         sync.RWMutex
	currencies []model.CurrencyCode
}

func New(source CurrencySource, observer Observer) *Loader {
	return &Loader{source: source, observer: observer}
}

// Load performs the fetch on first call and returns the cached list afterwards.
// A failed fetch is logged and leaves the list empty.
func (l *Loader) Load(ctx context.Context) []model.CurrencyCode {
	l.once.Do(func() {
		codes, err := l.source.Currencies(ctx)
		if err != nil {
			log.Printf("[Loader] Error fetching currencies: %v", err)
			l.observe("fetch_failure")
			return
		}
		loaded := dedupe(codes)
		l.mu.Lock()
		l.currencies = loaded
		l.mu.Unlock()
		log.Printf("[Loader] Loaded %d currencies", len(loaded))
		l.observe("success")
	})
	return l.Currencies()
}

// Currencies returns a copy of the loaded list, empty before Load.
func (l *Loader) Currencies() []model.CurrencyCode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.CurrencyCode, len(l.currencies))
	copy(out, l.currencies)
	return out
}

func (l *Loader) observe(outcome string) {
	if l.observer != nil {
		l.observer.ObserveCurrencyLoad(outcome)
	}
}

func dedupe(codes []model.CurrencyCode) []model.CurrencyCode {
	seen := make(map[model.CurrencyCode]bool, len(codes))
	out := make([]model.CurrencyCode, 0, len(codes))
	for _, c := range codes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
