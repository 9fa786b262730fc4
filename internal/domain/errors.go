package domain

import (
	"encoding/json"
	"fmt"
)

const (
	ErrCodeUnauthorized string = "UNAUTHORIZED"
	ErrCodeInternal     string = "INTERNAL_ERROR"
	ErrCodeExternal     string = "EXTERNAL_SERVICE_ERROR"
	ErrCodeDecode       string = "IMAGE_DECODE_ERROR"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Message:%s, Cause:%v", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message:%s", e.Message)

}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

// UpstreamError is returned when a remote HTTP peer (the image host or the
// image-generation API) answers with a non-success status. Body holds the
// raw response payload so it can be relayed unchanged.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Service, e.StatusCode, string(e.Body))
}

// Details returns the body as raw JSON when it parses, otherwise as a string.
// An empty body falls back to the error text.
func (e *UpstreamError) Details() any {
	if len(e.Body) == 0 {
		return e.Error()
	}
	if json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}

var ErrMissingCredential = &DomainError{Code: ErrCodeUnauthorized, Message: "no upstream credential available", Cause: nil}
