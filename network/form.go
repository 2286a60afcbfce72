package network

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrInvalidForm is wrapped by every validation failure.
var ErrInvalidForm = errors.New("invalid contact form")

// ContactForm is the payload posted to the contact endpoint.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate reports the first missing or malformed field.
func (f ContactForm) Validate() error {
	f = f.Normalize()
	required := []struct {
		name, value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidForm, r.name)
		}
	}

	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidForm, f.Email)
	}
	return nil
}
