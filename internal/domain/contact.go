package domain

import "errors"

// ErrNotConfigured is wrapped by adapters whose credentials or addresses are
// missing, as opposed to failures reported by the provider itself.
var ErrNotConfigured = errors.New("not configured")

// ContactField is one form field as posted by the site's contact form.
type ContactField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Notification is an outbound email about a form submission.
type Notification struct {
	To      string
	Subject string
	HTML    string
}

// Verification is the outcome of a bot-verification check.
type Verification struct {
	Accepted bool
	Score    float64
}
