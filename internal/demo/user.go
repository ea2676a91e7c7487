package demo

import (
	"context"
	"errors"

	"github.com/dmitrymomot/mailpreview/mailpreview"
)

// ErrTemplateMissing is returned by the broken demo email.
var ErrTemplateMissing = errors.New("demo: template missing")

// NewUserMailerPreview is the registry factory for the user account emails.
func NewUserMailerPreview() mailpreview.Preview {
	return mailpreview.NewMailer("UserMailer").
		Add("welcome", welcome).
		Add("password_reset", passwordReset).
		Add("digest_only_text", digestText).
		Add("broken", func(context.Context) (*mailpreview.Email, error) {
			return nil, ErrTemplateMissing
		})
}

func welcome(context.Context) (*mailpreview.Email, error) {
	return mailpreview.NewEmail("Welcome",
		mailpreview.WithHeader("From", "hello@example.com"),
		mailpreview.WithHeader("To", "jane@example.com"),
		mailpreview.WithHeader("Subject", "Welcome aboard, Jane"),
		mailpreview.WithHTML(`<h1>Welcome, Jane!</h1><p>Thanks for signing up.</p>`),
		mailpreview.WithText("Welcome, Jane! Thanks for signing up."),
	), nil
}

func passwordReset(context.Context) (*mailpreview.Email, error) {
	return mailpreview.NewEmail("Password reset",
		mailpreview.WithHeader("From", "security@example.com"),
		mailpreview.WithHeader("To", "jane@example.com"),
		mailpreview.WithHeader("Subject", "Reset your password"),
		mailpreview.WithText("Follow https://example.com/reset?token=abc to reset your password."),
		mailpreview.WithHTML(`<p><a href="https://example.com/reset?token=abc">Reset your password</a></p>`),
	), nil
}

func digestText(context.Context) (*mailpreview.Email, error) {
	return mailpreview.NewEmail("Weekly digest",
		mailpreview.WithHeader("Subject", "Your week"),
		mailpreview.WithText("3 new comments, 1 new follower."),
	), nil
}
