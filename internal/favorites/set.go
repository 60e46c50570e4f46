package favorites

import "CurrencyConverter/internal/model"

// Set is an ordered collection of unique currency codes.
type Set struct {
	codes []model.CurrencyCode
}

func NewSet(codes ...model.CurrencyCode) Set {
	out := make([]model.CurrencyCode, 0, len(codes))
	for _, c := range codes {
		if c == "" || contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return Set{codes: out}
}

func (s Set) Codes() []model.CurrencyCode {
	out := make([]model.CurrencyCode, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s Set) Len() int {
	return len(s.codes)
}

func (s Set) Contains(code model.CurrencyCode) bool {
	return contains(s.codes, code)
}

// Toggle removes code when present and appends it otherwise.
func (s Set) Toggle(code model.CurrencyCode) Set {
	if code == "" {
		return s
	}
	if !s.Contains(code) {
		return Set{codes: append(s.Codes(), code)}
	}
	out := make([]model.CurrencyCode, 0, len(s.codes))
	for _, c := range s.codes {
		if c != code {
			out = append(out, c)
		}
	}
	return Set{codes: out}
}

func contains(codes []model.CurrencyCode, code model.CurrencyCode) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
