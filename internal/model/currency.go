package model

import (
	"strconv"
	"strings"
)

type CurrencyCode string

// NormalizeCode trims and upper-cases user input such as " sek".
func NormalizeCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

type ConversionRequest struct {
	Amount float64
	From   CurrencyCode
	To     CurrencyCode
}

type ConversionResult struct {
	Amount   float64      `json:"amount"`
	Currency CurrencyCode `json:"currency"`
}

func (r ConversionResult) String() string {
	return FormatNumber(r.Amount) + " " + string(r.Currency)
}

type Status string

const (
	StatusIdle       Status = "idle"
	StatusConverting Status = "converting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// FormatNumber renders v in its shortest decimal form: 83.2, 1, 1000000.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
