// Package views renders the mail preview pages as templ components.
package views
