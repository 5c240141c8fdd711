package api

import "net/http"

// ErrorKind is the closed set of failure categories a handler can surface.
// Each kind maps to a fixed, non-leaking message; raw provider or database
// error text is logged for operators but never echoed to callers.
type ErrorKind int

const (
	// KindValidation: a required field is missing. Short-circuits before
	// any side effect; the response enumerates the missing field names.
	KindValidation ErrorKind = iota
	// KindRemoteService: a generative-AI call failed. Always recovered
	// internally with default prose, so it never becomes a response kind
	// on its own; it exists for logging classification.
	KindRemoteService
	// KindPersistence: a database statement failed inside a transaction.
	KindPersistence
	// KindUnknown: anything else.
	KindUnknown
)

func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) Message() string {
	switch k {
	case KindValidation:
		return "All fields are required"
	case KindRemoteService:
		return "The content service is temporarily unavailable"
	case KindPersistence:
		return "The report could not be saved"
	default:
		return "An internal error occurred"
	}
}
