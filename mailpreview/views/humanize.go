package views

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Humanize turns an email or method name such as "orderShipped" or
// "order_shipped" into "Order Shipped".
func Humanize(name string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return titleCaser.String(strings.Join(words, " "))
}

// EmailURL is the page URL for one email under mountPath.
func EmailURL(mountPath, preview, email string) string {
	return strings.TrimSuffix(mountPath, "/") + "/" + url.PathEscape(preview) + "/" + url.PathEscape(email)
}

// PartURL is the raw-part URL for one part of an email.
func PartURL(mountPath, preview, email, part string) string {
	return EmailURL(mountPath, preview, email) + "?part=" + url.QueryEscape(part)
}
