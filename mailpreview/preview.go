package mailpreview

import (
	"context"
	"slices"
)

// Builder builds one email. It receives the request context.
type Builder func(ctx context.Context) (*Email, error)

// Preview exposes the previewable emails of one mailer.
type Preview interface {
	// Name is the path segment the preview is routed by.
	Name() string
	// Emails lists the available email names in display order.
	Emails() []string
	// Find returns the builder for an email name.
	Find(email string) (Builder, bool)
}

// Factory constructs a fresh Preview.
type Factory func() Preview

// Mailer is a ready-made Preview backed by an ordered set of builders.
type Mailer struct {
	name     string
	order    []string
	builders map[string]Builder
}

// NewMailer creates an empty Mailer.
func NewMailer(name string) *Mailer {
	return &Mailer{name: name, builders: make(map[string]Builder)}
}

// Add registers a builder under email, replacing any previous one. It returns m for chaining.
func (m *Mailer) Add(email string, b Builder) *Mailer {
	if _, ok := m.builders[email]; !ok {
		m.order = append(m.order, email)
	}
	m.builders[email] = b
	return m
}

// Name returns the name the mailer was created with.
func (m *Mailer) Name() string {
	return m.name
}

// Emails returns the email names in the order they were first added.
func (m *Mailer) Emails() []string {
	return slices.Clone(m.order)
}

// Find returns the builder added under email.
func (m *Mailer) Find(email string) (Builder, bool) {
	b, ok := m.builders[email]
	return b, ok
}
