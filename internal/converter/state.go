package converter

import (
	"CurrencyConverter/internal/favorites"
	"CurrencyConverter/internal/model"
	"errors"
)

type Side string

const (
	From Side = "from"
	To   Side = "to"
)

var (
	ErrSameCurrency    = errors.New("converter: currency is selected on the other side")
	ErrEmptyCurrency   = errors.New("converter: empty currency code")
	ErrUnknownSide     = errors.New("converter: unknown side")
	ErrUnknownCurrency = errors.New("converter: currency is not offered")
)

// Option is one entry of a currency selector.
type Option struct {
	Code     model.CurrencyCode `json:"code"`
	Favorite bool               `json:"favorite"`
}

// State is everything one conversion widget needs. Transitions return a new
// State and never modify the receiver.
type State struct {
	Currencies []model.CurrencyCode
	From       model.CurrencyCode
	To         model.CurrencyCode
	Amount     model.Amount
	MaxAmount  float64
	Converting bool
	Result     *model.ConversionResult
	Err        *model.ConversionError
	Favorites  favorites.Set

	generation uint64
}

// Ticket identifies one conversion cycle started by Begin.
type Ticket struct {
	Generation uint64
	Request    model.ConversionRequest
}

func (s State) Status() model.Status {
	switch {
	case s.Converting:
		return model.StatusConverting
	case s.Err != nil:
		return model.StatusFailed
	case s.Result != nil:
		return model.StatusSucceeded
	default:
		return model.StatusIdle
	}
}

func (s State) WithAmount(raw string) State {
	limit := s.MaxAmount
	if limit <= 0 {
		limit = model.DefaultMaxAmount
	}
	s.Amount = model.ParseAmount(raw, limit)
	return s
}

// Swapped exchanges both selections at once.
func (s State) Swapped() State {
	s.From, s.To = s.To, s.From
	return s
}

func (s State) WithSelection(side Side, code model.CurrencyCode) (State, error) {
	if code == "" {
		return s, ErrEmptyCurrency
	}
	switch side {
	case From:
		if code == s.To {
			return s, ErrSameCurrency
		}
		if !s.offers(From, code) {
			return s, ErrUnknownCurrency
		}
		s.From = code
	case To:
		if code == s.From {
			return s, ErrSameCurrency
		}
		if !s.offers(To, code) {
			return s, ErrUnknownCurrency
		}
		s.To = code
	default:
		return s, ErrUnknownSide
	}
	return s, nil
}

// offers reports whether code is one of the options of side.
func (s State) offers(side Side, code model.CurrencyCode) bool {
	for _, o := range s.Options(side) {
		if o.Code == code {
			return true
		}
	}
	return false
}

func (s State) WithCurrencies(codes []model.CurrencyCode) State {
	s.Currencies = append([]model.CurrencyCode(nil), codes...)
	return s
}

func (s State) WithFavorites(set favorites.Set) State {
	s.Favorites = set
	return s
}

// Begin starts a new cycle: the previous outcome is cleared and any cycle
// still in flight is superseded. ok is false when the inputs are invalid; the
// returned state then already holds the InvalidInput error.
func (s State) Begin() (next State, t Ticket, ok bool) {
	s.generation++
	s.Result = nil
	s.Err = nil

	if s.From == "" || s.To == "" || !s.Amount.Positive() {
		s.Converting = false
		s.Err = &model.ConversionError{Kind: model.InvalidInput}
		return s, Ticket{Generation: s.generation}, false
	}

	s.Converting = true
	t = Ticket{
		Generation: s.generation,
		Request: model.ConversionRequest{
			Amount: s.Amount.Value,
			From:   s.From,
			To:     s.To,
		},
	}
	return s, t, true
}

// Settle applies the outcome of t. Outcomes of superseded cycles are dropped
// and applied is false.
func (s State) Settle(t Ticket, value float64, err error) (next State, applied bool) {
	if t.Generation != s.generation {
		return s, false
	}
	s.Converting = false
	if err != nil {
		s.Result = nil
		s.Err = &model.ConversionError{Kind: model.FetchFailure}
		return s, true
	}
	s.Err = nil
	s.Result = &model.ConversionResult{Amount: value, Currency: t.Request.To}
	return s, true
}

// Options lists what the selector for side offers: favourites first, then the
// remaining loaded currencies. The code selected on the other side is never offered.
func (s State) Options(side Side) []Option {
	var other model.CurrencyCode
	switch side {
	case From:
		other = s.To
	case To:
		other = s.From
	default:
		return nil
	}

	opts := make([]Option, 0, s.Favorites.Len()+len(s.Currencies))
	for _, c := range s.Favorites.Codes() {
		if c != other {
			opts = append(opts, Option{Code: c, Favorite: true})
		}
	}
	for _, c := range s.Currencies {
		if c != other && !s.Favorites.Contains(c) {
			opts = append(opts, Option{Code: c})
		}
	}
	return opts
}
