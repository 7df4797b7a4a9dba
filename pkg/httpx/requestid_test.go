package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"grouporder/pkg/ctxmeta"
)

func TestRequestIDTransport_GeneratesID(t *testing.T) {
	var got string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
	}))
	defer srv.Close()

	client := &http.Client{Transport: &RequestIDTransport{}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()

	if got == "" {
		t.Fatalf("X-Request-ID must be generated when the context has none")
	}
}

func TestRequestIDTransport_ReusesContextID(t *testing.T) {
	var got string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
	}))
	defer srv.Close()

	ctx := ctxmeta.WithRequestID(context.Background(), "fixed-id")
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)

	client := &http.Client{Transport: &RequestIDTransport{}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()

	if got != "fixed-id" {
		t.Fatalf("request id from the context must win, got %q", got)
	}
}

func TestRequestIDTransport_DoesNotMutateOriginal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	client := &http.Client{Transport: &RequestIDTransport{}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("X-Request-ID") != "" {
		t.Fatalf("original request must stay untouched")
	}
}
