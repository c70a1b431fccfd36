package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	if _, err := NewClient("", "x <x@y.test>"); !errors.Is(err, ErrMissingResendAPIKey) {
		t.Fatalf("expected ErrMissingResendAPIKey, got %v", err)
	}
	if _, err := NewClient("re_123", "x <x@y.test>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_SendEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got sendRequest
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/emails" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"email-1"}`))
		}))
		defer srv.Close()

		c, err := NewClient("re_test", "OSMS <rfq@osms.test>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c = c.WithBaseURL(srv.URL)

		if err := c.SendEmail(context.Background(), "dana@acme.test", "subject", "body"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if auth != "Bearer re_test" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		if got.From != "OSMS <rfq@osms.test>" || len(got.To) != 1 || got.To[0] != "dana@acme.test" {
			t.Fatalf("unexpected payload: %+v", got)
		}
		if got.Subject != "subject" || got.Text != "body" {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})

	t.Run("provider error surfaces status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"invalid to"}`))
		}))
		defer srv.Close()

		c, _ := NewClient("re_test", "OSMS <rfq@osms.test>")
		c = c.WithBaseURL(srv.URL)

		err := c.SendEmail(context.Background(), "bad", "s", "b")
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		c, _ := NewClient("re_test", "OSMS <rfq@osms.test>")
		c = c.WithBaseURL(srv.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := c.SendEmail(ctx, "dana@acme.test", "s", "b"); err == nil {
			t.Fatalf("expected context error")
		}
	})
}
