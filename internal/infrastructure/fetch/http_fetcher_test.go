package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VENUCODE/paint-ai/internal/domain"
)

func TestFetch_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("raw-bytes"))
	}))
	defer srv.Close()

	got, err := NewHTTPFetcher(srv.Client()).Fetch(context.Background(), srv.URL+"/house.jpg")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(got) != "raw-bytes" {
		t.Errorf("body = %q, want raw-bytes", got)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"missing"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(nil).Fetch(context.Background(), srv.URL)
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("err = %v, want *domain.UpstreamError", err)
	}
	if upErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", upErr.StatusCode)
	}
	if string(upErr.Body) != `{"message":"missing"}` {
		t.Errorf("body = %s", upErr.Body)
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := NewHTTPFetcher(nil).Fetch(context.Background(), "::not a url")
	if err == nil {
		t.Fatal("expected error")
	}
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		t.Errorf("unexpected upstream error for malformed url")
	}
}
