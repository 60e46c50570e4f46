package model

type ErrorKind string

const (
	InvalidInput ErrorKind = "invalid_input"
	FetchFailure ErrorKind = "fetch_failure"
)

// ConversionError is display-only: it carries the kind and the text shown to the user.
type ConversionError struct {
	Kind ErrorKind `json:"kind"`
}

func (e ConversionError) Error() string {
	return e.Message()
}

func (e ConversionError) Message() string {
	switch e.Kind {
	case InvalidInput:
		return "Invalid inputs for conversion"
	case FetchFailure:
		return "Failed to fetch conversion rates"
	default:
		return string(e.Kind)
	}
}
