package dto

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/VENUCODE/paint-ai/internal/domain"
)

func TestMapErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		details any
	}{
		{
			name:    "missing credential",
			err:     fmt.Errorf("resolve: %w", domain.ErrMissingCredential),
			status:  http.StatusUnauthorized,
			details: "no upstream credential available",
		},
		{
			name:    "decode failure",
			err:     domain.NewDomainError(domain.ErrCodeDecode, "failed to decode source image", errors.New("unknown format")),
			status:  http.StatusInternalServerError,
			details: "failed to decode source image: unknown format",
		},
		{
			name:    "upstream text body",
			err:     &domain.UpstreamError{Service: "image host", StatusCode: http.StatusNotFound, Body: []byte("not found")},
			status:  http.StatusNotFound,
			details: "not found",
		},
		{
			name:    "upstream empty body",
			err:     &domain.UpstreamError{Service: "image host", StatusCode: http.StatusBadGateway},
			status:  http.StatusBadGateway,
			details: "image host responded with status 502: ",
		},
		{
			name:    "plain error",
			err:     errors.New("dial tcp: connection refused"),
			status:  http.StatusInternalServerError,
			details: "dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErr(tt.err, "Error processing request")
			if got.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", got.StatusCode, tt.status)
			}
			if got.Body.Error != "Error processing request" {
				t.Errorf("error = %q", got.Body.Error)
			}
			if got.Body.Details != tt.details {
				t.Errorf("details = %#v, want %#v", got.Body.Details, tt.details)
			}
		})
	}
}
