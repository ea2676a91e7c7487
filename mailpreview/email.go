package mailpreview

import (
	"bytes"
	"context"
	"slices"

	"github.com/a-h/templ"
)

// Common part types.
const (
	TypeHTML = "text/html"
	TypeText = "text/plain"
)

// Part is one content variant of an email, keyed by a MIME-like type.
type Part struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Header is a metadata line such as From or Subject.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Email is the in-memory rendition of a generated message. It is immutable
// once built: accessors return copies.
type Email struct {
	title   string
	headers []Header
	parts   []Part
}

// EmailOption configures NewEmail.
type EmailOption func(*Email)

// NewEmail builds an Email. Parts keep insertion order; adding a part type
// that already exists replaces its content in place.
func NewEmail(title string, opts ...EmailOption) *Email {
	e := &Email{title: title}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithHeader appends a metadata header.
func WithHeader(name, value string) EmailOption {
	return func(e *Email) {
		e.headers = append(e.headers, Header{Name: name, Value: value})
	}
}

// WithPart adds a part or replaces the content of an existing part of the same type.
func WithPart(partType, content string) EmailOption {
	return func(e *Email) {
		for i := range e.parts {
			if e.parts[i].Type == partType {
				e.parts[i].Content = content
				return
			}
		}
		e.parts = append(e.parts, Part{Type: partType, Content: content})
	}
}

// WithHTML adds a text/html part.
func WithHTML(content string) EmailOption {
	return WithPart(TypeHTML, content)
}

// WithText adds a text/plain part.
func WithText(content string) EmailOption {
	return WithPart(TypeText, content)
}

// Title returns the email's display title.
func (e *Email) Title() string {
	return e.title
}

// Headers returns a copy of the metadata headers in insertion order.
func (e *Email) Headers() []Header {
	return slices.Clone(e.headers)
}

// Parts returns a copy of the parts in insertion order.
func (e *Email) Parts() []Part {
	return slices.Clone(e.parts)
}

// PartTypes returns the part types in insertion order.
func (e *Email) PartTypes() []string {
	types := make([]string, len(e.parts))
	for i, p := range e.parts {
		types[i] = p.Type
	}
	return types
}

// Part returns the content of the part with exactly the given type.
func (e *Email) Part(partType string) (string, bool) {
	for _, p := range e.parts {
		if p.Type == partType {
			return p.Content, true
		}
	}
	return "", false
}

// RenderHTML renders a templ component to a string suitable for WithHTML.
func RenderHTML(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
