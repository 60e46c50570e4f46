package converter

import (
	"CurrencyConverter/internal/favorites"
	"CurrencyConverter/internal/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseState() State {
	return State{
		Currencies: []model.CurrencyCode{"USD", "EUR", "INR", "SEK"},
		From:       "USD",
		To:         "INR",
		MaxAmount:  model.DefaultMaxAmount,
		Favorites:  favorites.NewSet("USD", "EUR", "INR"),
	}.WithAmount("1")
}

func TestState_Begin_InvalidAmounts(t *testing.T) {
	for _, raw := range []string{"", "0", "-5", "abc"} {
		s := baseState().WithAmount(raw)

		next, _, ok := s.Begin()
		assert.False(t, ok, raw)
		assert.False(t, next.Converting, raw)
		require.NotNil(t, next.Err, raw)
		assert.Equal(t, model.InvalidInput, next.Err.Kind, raw)
		assert.Equal(t, "Invalid inputs for conversion", next.Err.Message())
		assert.Equal(t, model.StatusFailed, next.Status())
	}
}

func TestState_Begin_MissingCurrency(t *testing.T) {
	s := baseState()
	s.To = ""

	next, _, ok := s.Begin()
	assert.False(t, ok)
	require.NotNil(t, next.Err)
	assert.Equal(t, model.InvalidInput, next.Err.Kind)
}

func TestState_BeginClearsPreviousOutcome(t *testing.T) {
	s := baseState()
	s.Result = &model.ConversionResult{Amount: 1, Currency: "EUR"}
	s.Err = &model.ConversionError{Kind: model.FetchFailure}

	next, ticket, ok := s.Begin()
	require.True(t, ok)
	assert.Nil(t, next.Result)
	assert.Nil(t, next.Err)
	assert.True(t, next.Converting)
	assert.Equal(t, model.StatusConverting, next.Status())
	assert.Equal(t, model.ConversionRequest{Amount: 1, From: "USD", To: "INR"}, ticket.Request)
}

func TestState_Settle(t *testing.T) {
	s, ticket, ok := baseState().Begin()
	require.True(t, ok)

	done, applied := s.Settle(ticket, 83.2, nil)
	require.True(t, applied)
	assert.False(t, done.Converting)
	require.NotNil(t, done.Result)
	assert.Equal(t, "83.2 INR", done.Result.String())
	assert.Equal(t, model.StatusSucceeded, done.Status())

	failed, applied := s.Settle(ticket, 0, errors.New("status 500"))
	require.True(t, applied)
	assert.Nil(t, failed.Result)
	require.NotNil(t, failed.Err)
	assert.Equal(t, model.FetchFailure, failed.Err.Kind)
	assert.Equal(t, "Failed to fetch conversion rates", failed.Err.Message())
}

func TestState_SettleIgnoresSupersededTicket(t *testing.T) {
	first, oldTicket, _ := baseState().Begin()
	second, newTicket, _ := first.Begin()

	after, applied := second.Settle(oldTicket, 1, nil)
	assert.False(t, applied)
	assert.True(t, after.Converting)
	assert.Nil(t, after.Result)

	after, applied = after.Settle(newTicket, 83.2, nil)
	assert.True(t, applied)
	assert.False(t, after.Converting)
}

func TestState_AmountClamped(t *testing.T) {
	s := baseState().WithAmount("1000001")
	assert.Equal(t, model.NewAmount(1_000_000), s.Amount)

	s = State{}.WithAmount("5000000")
	assert.Equal(t, model.NewAmount(model.DefaultMaxAmount), s.Amount)
}

func TestState_SwapIsItsOwnInverse(t *testing.T) {
	s := baseState()
	once := s.Swapped()
	assert.Equal(t, model.CurrencyCode("INR"), once.From)
	assert.Equal(t, model.CurrencyCode("USD"), once.To)

	twice := once.Swapped()
	assert.Equal(t, s.From, twice.From)
	assert.Equal(t, s.To, twice.To)
}

func TestState_WithSelection(t *testing.T) {
	s := baseState()

	_, err := s.WithSelection(From, "INR")
	assert.ErrorIs(t, err, ErrSameCurrency)
	_, err = s.WithSelection(To, "USD")
	assert.ErrorIs(t, err, ErrSameCurrency)
	_, err = s.WithSelection(To, "")
	assert.ErrorIs(t, err, ErrEmptyCurrency)
	_, err = s.WithSelection("middle", "SEK")
	assert.ErrorIs(t, err, ErrUnknownSide)
	_, err = s.WithSelection(From, "XYZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	_, err = s.WithSelection(To, "xyz")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	next, err := s.WithSelection(To, "SEK")
	require.NoError(t, err)
	assert.Equal(t, model.CurrencyCode("SEK"), next.To)
	assert.Equal(t, model.CurrencyCode("INR"), s.To, "receiver must not change")
}

func TestState_Options_FavoritesFirst(t *testing.T) {
	s := baseState()

	from := s.Options(From)
	assert.Equal(t, []Option{
		{Code: "USD", Favorite: true},
		{Code: "EUR", Favorite: true},
		{Code: "SEK"},
	}, from)

	to := s.Options(To)
	assert.Equal(t, []Option{
		{Code: "EUR", Favorite: true},
		{Code: "INR", Favorite: true},
		{Code: "SEK"},
	}, to)

	assert.Nil(t, s.Options("middle"))
}

func TestState_Options_NeverOfferOtherSelection(t *testing.T) {
	codes := []model.CurrencyCode{"USD", "EUR", "INR", "SEK"}
	favSets := []favorites.Set{
		favorites.NewSet(),
		favorites.NewSet("USD", "EUR", "INR"),
		favorites.NewSet("SEK", "GBP"),
	}
	for _, favs := range favSets {
		for _, from := range codes {
			for _, to := range codes {
				if from == to {
					continue
				}
				s := State{Currencies: codes, From: from, To: to, Favorites: favs}
				for _, o := range s.Options(From) {
					assert.NotEqual(t, to, o.Code)
				}
				for _, o := range s.Options(To) {
					assert.NotEqual(t, from, o.Code)
				}
			}
		}
	}
}

func TestState_Options_WithoutLoadedCurrencies(t *testing.T) {
	s := baseState().WithCurrencies(nil)
	assert.Equal(t, []Option{{Code: "USD", Favorite: true}, {Code: "EUR", Favorite: true}}, s.Options(From))
}

func TestState_WithSelection_FavoriteOutsideLoadedList(t *testing.T) {
	s := baseState().WithCurrencies(nil)

	next, err := s.WithSelection(To, "EUR")
	require.NoError(t, err)
	assert.Equal(t, model.CurrencyCode("EUR"), next.To)

	_, err = s.WithSelection(To, "SEK")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
