package network

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func validForm() ContactForm {
	return ContactForm{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice stars.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContactForm)
		wantErr bool
	}{
		{"valid", func(f *ContactForm) {}, false},
		{"padded fields", func(f *ContactForm) { f.Email = "  ada@example.com " }, false},
		{"missing name", func(f *ContactForm) { f.Name = "  " }, true},
		{"missing subject", func(f *ContactForm) { f.Subject = "" }, true},
		{"missing message", func(f *ContactForm) { f.Message = "" }, true},
		{"bad email", func(f *ContactForm) { f.Email = "not-an-email" }, true},
		{"display name email", func(f *ContactForm) { f.Email = "Ada <ada@example.com>" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidForm) {
				t.Errorf("Expected ErrInvalidForm, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func waitForState(t *testing.T, c *ContactClient, want SendState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for state %d, last state %d", want, c.State())
}

func TestSendPostsJSON(t *testing.T) {
	var mu sync.Mutex
	var got ContactForm
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewContactClient(srv.URL, time.Second)
	if err := c.Send(validForm()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	waitForState(t, c, SendDone)

	mu.Lock()
	defer mu.Unlock()
	if got != validForm() {
		t.Errorf("Expected %+v, got %+v", validForm(), got)
	}

	c.Acknowledge()
	if c.State() != SendIdle {
		t.Errorf("Expected idle after acknowledge, got %d", c.State())
	}
}

func TestSendReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewContactClient(srv.URL, time.Second)
	if err := c.Send(validForm()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	waitForState(t, c, SendFailed)
	if c.LastError() == nil {
		t.Errorf("Expected last error to be set")
	}
}

func TestSendWithoutEndpointSucceeds(t *testing.T) {
	c := NewContactClient("", time.Second)
	if err := c.Send(validForm()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	waitForState(t, c, SendDone)
}

func TestSendRejectsInvalidForm(t *testing.T) {
	c := NewContactClient("", time.Second)
	f := validForm()
	f.Email = "nope"
	if err := c.Send(f); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("Expected ErrInvalidForm, got %v", err)
	}
	if c.State() != SendIdle {
		t.Errorf("Expected idle state after rejected form, got %d", c.State())
	}
}
