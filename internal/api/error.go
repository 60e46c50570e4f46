package api

type ErrorResponse struct {
	Message ServiceError `json:"error_message"`
}

type ServiceError string

const (
	InvalidRequestBody  ServiceError = "Invalid request body"
	SameCurrency        ServiceError = "Currency is selected on the other side"
	EmptyCurrency       ServiceError = "Currency is required"
	UnknownSide         ServiceError = "Unknown selector side"
	UnknownCurrency     ServiceError = "Currency is not offered by this selector"
	ServerInternalError ServiceError = "Server internal error"
)
