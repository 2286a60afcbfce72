package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

type SendState int

const (
	SendIdle SendState = iota
	SendInFlight
	SendDone
	SendFailed
)

// ContactClient posts contact forms in the background. The game loop polls
// State and LastError; all shared fields are protected by mu.
type ContactClient struct {
	mu sync.Mutex

	state     SendState
	lastError error

	endpoint   string
	httpClient *http.Client
}

// NewContactClient creates a client for endpoint. An empty endpoint logs the
// submission instead of sending it.
func NewContactClient(endpoint string, timeout time.Duration) *ContactClient {
	return &ContactClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send validates the form and starts the post in a goroutine. A validation
// error is returned immediately and nothing is sent. Send is ignored while a
// previous post is still in flight.
func (c *ContactClient) Send(form ContactForm) error {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.state == SendInFlight {
		c.mu.Unlock()
		return nil
	}
	c.state = SendInFlight
	c.lastError = nil
	c.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()
		c.finish(c.post(ctx, form))
	}()
	return nil
}

// State returns the current send state.
func (c *ContactClient) State() SendState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the error of the last failed send.
func (c *ContactClient) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// Acknowledge moves a finished send back to idle so the UI reports it once.
func (c *ContactClient) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == SendDone || c.state == SendFailed {
		c.state = SendIdle
	}
}

func (c *ContactClient) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[contact] submission failed: %v", err)
		c.state = SendFailed
		c.lastError = err
		return
	}
	c.state = SendDone
}

func (c *ContactClient) post(ctx context.Context, form ContactForm) error {
	if c.endpoint == "" {
		log.Printf("[contact] form submitted: name=%q email=%q subject=%q (%d chars)",
			form.Name, form.Email, form.Subject, len(form.Message))
		return nil
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode contact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post contact form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("contact endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
