package converter

import (
	"CurrencyConverter/internal/favorites"
	"CurrencyConverter/internal/metrics"
	"CurrencyConverter/internal/model"
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type RateSource interface {
	Latest(ctx context.Context, req model.ConversionRequest) (float64, error)
}

type FavoritesStore interface {
	Load(ctx context.Context) (favorites.Set, error)
	Save(ctx context.Context, set favorites.Set) error
}

type Observer interface {
	ObserveConversion(outcome string, d time.Duration)
	ObserveFavoriteToggle()
}

// Defaults seed the state of a new Controller.
type Defaults struct {
	From      model.CurrencyCode
	To        model.CurrencyCode
	Amount    string
	MaxAmount float64
}

// Controller owns the widget state. All transitions go through it.
type Controller struct {
	rates    RateSource
	store    FavoritesStore
	observer Observer

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// New loads the persisted favourites and builds the initial state.
func New(ctx context.Context, rates RateSource, store FavoritesStore, observer Observer, d Defaults) (*Controller, error) {
	favs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if d.From != "" && d.From == d.To {
		return nil, ErrSameCurrency
	}
	state := State{
		From:      d.From,
		To:        d.To,
		MaxAmount: d.MaxAmount,
		Favorites: favs,
	}.WithAmount(d.Amount)

	return &Controller{
		rates:    rates,
		store:    store,
		observer: observer,
		state:    state,
	}, nil
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Options(side Side) []Option {
	return c.Snapshot().Options(side)
}

func (c *Controller) SetCurrencies(codes []model.CurrencyCode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.WithCurrencies(codes)
}

func (c *Controller) SetAmount(raw string) model.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.WithAmount(raw)
	return c.state.Amount
}

func (c *Controller) Swap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Swapped()
}

func (c *Controller) Select(side Side, code model.CurrencyCode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.WithSelection(side, code)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// ToggleFavorite flips code in the favourites and persists the whole set
// before returning. If saving fails the in-memory set is left as it was.
func (c *Controller) ToggleFavorite(ctx context.Context, code model.CurrencyCode) error {
	if code == "" {
		return ErrEmptyCurrency
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Favorites.Toggle(code)
	if err := c.store.Save(ctx, next); err != nil {
		log.Printf("[Converter] failed to persist favorites: %v", err)
		return err
	}
	c.state = c.state.WithFavorites(next)
	if c.observer != nil {
		c.observer.ObserveFavoriteToggle()
	}
	return nil
}

// Convert runs a full conversion cycle and returns the resulting state.
func (c *Controller) Convert(ctx context.Context) State {
	if a := c.Begin(ctx); a != nil {
		a.Run()
	}
	return c.Snapshot()
}

// Attempt is a validated conversion waiting for its outbound request.
type Attempt struct {
	ID uuid.UUID

	c      *Controller
	ticket Ticket
	ctx    context.Context
	cancel context.CancelFunc
}

// Begin validates the inputs and marks the state as converting. It returns nil
// when validation failed and no request must be made. Any attempt still in
// flight is cancelled and its outcome will be ignored.
func (c *Controller) Begin(ctx context.Context) *Attempt {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	next, ticket, ok := c.state.Begin()
	c.state = next
	if !ok {
		log.Printf("[Converter] invalid inputs: amount=%q from=%q to=%q", next.Amount.String(), next.From, next.To)
		c.observe(metrics.OutcomeInvalid, 0)
		return nil
	}

	actx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	return &Attempt{
		ID:     uuid.New(),
		c:      c,
		ticket: ticket,
		ctx:    actx,
		cancel: cancel,
	}
}

func (a *Attempt) Request() model.ConversionRequest {
	return a.ticket.Request
}

// Run performs the request and settles the attempt.
func (a *Attempt) Run() {
	req := a.ticket.Request
	log.Printf("[Converter] Conversion started, request_id = %s (%s %s -> %s)",
		a.ID, model.FormatNumber(req.Amount), req.From, req.To)

	start := time.Now()
	value, err := a.c.rates.Latest(a.ctx, req)
	a.cancel()
	a.c.settle(a, value, err, time.Since(start))
}

func (c *Controller) settle(a *Attempt, value float64, err error, took time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, applied := c.state.Settle(a.ticket, value, err)
	if !applied {
		log.Printf("[Converter] Conversion superseded, request_id = %s", a.ID)
		c.observe(metrics.OutcomeSuperseded, took)
		return
	}
	c.state = next
	c.cancel = nil

	if err != nil {
		log.Printf("[Converter] Error fetching conversion, request_id = %s: %v", a.ID, err)
		c.observe(metrics.OutcomeFailure, took)
		return
	}
	log.Printf("[Converter] Conversion finished, request_id = %s, result = %s", a.ID, next.Result)
	c.observe(metrics.OutcomeSuccess, took)
}

func (c *Controller) observe(outcome string, took time.Duration) {
	if c.observer != nil {
		c.observer.ObserveConversion(outcome, took)
	}
}
