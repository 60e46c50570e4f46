package model

import (
	"math"
	"strconv"
	"strings"
)

const DefaultMaxAmount = 1_000_000

// Amount is the value of the amount field. The zero value is unset.
type Amount struct {
	Value float64
	Valid bool
}

func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// ParseAmount applies the amount field rules: empty, unparsable and
// non-positive input leave the field unset, anything above limit is clamped.
func ParseAmount(raw string, limit float64) Amount {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return Amount{}
	}
	if v > limit {
		return NewAmount(limit)
	}
	return NewAmount(v)
}

// Positive reports whether the amount may be sent for conversion.
func (a Amount) Positive() bool {
	return a.Valid && a.Value > 0
}

func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return FormatNumber(a.Value)
}
