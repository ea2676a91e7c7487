package demo

import "github.com/dmitrymomot/mailpreview/mailpreview"

// Class names the demo previews are registered under.
const (
	OrderMailerClass = "demo.OrderMailerPreview"
	UserMailerClass  = "demo.UserMailerPreview"
)

// Register adds the demo previews to r.
func Register(r *mailpreview.Registry) {
	r.Register(OrderMailerClass, NewOrderMailerPreview)
	r.Register(UserMailerClass, NewUserMailerPreview)
}
