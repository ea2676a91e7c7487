package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailpreview/mailpreview"
)

// OrderMailerPreview previews the order notifications.
type OrderMailerPreview struct{}

// NewOrderMailerPreview is the registry factory for OrderMailerPreview.
func NewOrderMailerPreview() mailpreview.Preview {
	return OrderMailerPreview{}
}

func (OrderMailerPreview) Name() string {
	return "OrderMailer"
}

func (OrderMailerPreview) Emails() []string {
	return []string{"confirmation", "shipped"}
}

func (p OrderMailerPreview) Find(email string) (mailpreview.Builder, bool) {
	switch email {
	case "confirmation":
		return p.confirmation, true
	case "shipped":
		return p.shipped, true
	}
	return nil, false
}

func (OrderMailerPreview) confirmation(context.Context) (*mailpreview.Email, error) {
	return mailpreview.NewEmail("Order",
		mailpreview.WithHeader("From", "shop@example.com"),
		mailpreview.WithHeader("To", "customer@example.com"),
		mailpreview.WithHeader("Subject", "Your order is confirmed"),
		mailpreview.WithHTML("<b>hi</b>"),
		mailpreview.WithText("hi"),
	), nil
}

func (OrderMailerPreview) shipped(ctx context.Context) (*mailpreview.Email, error) {
	order := sampleOrder()
	html, err := mailpreview.RenderHTML(ctx, shippedBody(order))
	if err != nil {
		return nil, err
	}
	return mailpreview.NewEmail("Order shipped",
		mailpreview.WithHeader("From", "shop@example.com"),
		mailpreview.WithHeader("To", order.Email),
		mailpreview.WithHeader("Subject", fmt.Sprintf("Order #%d is on its way", order.Number)),
		mailpreview.WithHTML(html),
		mailpreview.WithText(fmt.Sprintf("Order #%d shipped via %s. Tracking: %s", order.Number, order.Carrier, order.Tracking)),
	), nil
}

type order struct {
	Number   int
	Email    string
	Carrier  string
	Tracking string
	Items    []string
}

func sampleOrder() order {
	return order{
		Number:   1042,
		Email:    "customer@example.com",
		Carrier:  "UPS",
		Tracking: "1Z999AA10123456784",
		Items:    []string{"Notebook", "Fountain pen <blue>"},
	}
}

func shippedBody(o order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>Order #%d shipped</h1><p>Carrier: %s, tracking <code>%s</code></p><ul>",
			o.Number, templ.EscapeString(o.Carrier), templ.EscapeString(o.Tracking)); err != nil {
			return err
		}
		for _, item := range o.Items {
			if _, err := io.WriteString(w, "<li>"+templ.EscapeString(item)+"</li>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
