package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PreviewItem is one row of the index page.
type PreviewItem struct {
	Name   string
	Emails []string
}

// IndexPage lists previews and their emails.
type IndexPage struct {
	MountPath string
	Previews  []PreviewItem
}

// Header is a metadata line shown above the email body.
type Header struct {
	Name  string
	Value string
}

// EmailPage shows one email with a part selector and the preferred part in an iframe.
type EmailPage struct {
	Title     string
	MountPath string
	Preview   string
	Email     string
	Subject   string
	Headers   []Header
	Parts     []string
	Part      string
	HasPart   bool
}

const style = `body{font-family:-apple-system,"Helvetica Neue",Helvetica,Arial,sans-serif;margin:0}` +
	`header{background:#f5f5f5;border-bottom:1px solid #ddd;padding:12px 20px}` +
	`main{padding:12px 20px}dt{font-weight:bold;float:left;clear:left;width:90px}dd{margin:0 0 4px 100px}` +
	`iframe{border:0;width:100%;height:calc(100vh - 220px)}ul.parts{list-style:none;padding:0}` +
	`ul.parts li{display:inline;margin-right:12px}li.active a{font-weight:bold}`

// Index renders the list of previews.
func Index(p IndexPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, "Mailer Previews")
		b.WriteString("<main><h1>Mailer Previews</h1>")
		if len(p.Previews) == 0 {
			b.WriteString("<p>No mailer previews found.</p>")
		}
		for _, preview := range p.Previews {
			b.WriteString("<h3>")
			b.WriteString(templ.EscapeString(preview.Name))
			b.WriteString("</h3><ul>")
			for _, email := range preview.Emails {
				b.WriteString(`<li><a href="`)
				b.WriteString(templ.EscapeString(EmailURL(p.MountPath, preview.Name, email)))
				b.WriteString(`">`)
				b.WriteString(templ.EscapeString(Humanize(email)))
				b.WriteString("</a></li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</main></body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Email renders one email page. The body is loaded by the browser from the
// raw-part URL of the preferred part.
func Email(p EmailPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, p.Title)
		b.WriteString("<header><h1>")
		b.WriteString(templ.EscapeString(p.Title))
		b.WriteString("</h1><dl>")
		if p.Subject != "" {
			writeHeader(&b, "Subject", p.Subject)
		}
		for _, h := range p.Headers {
			writeHeader(&b, h.Name, h.Value)
		}
		b.WriteString("</dl>")
		if len(p.Parts) > 0 {
			b.WriteString(`<ul class="parts">`)
			for _, part := range p.Parts {
				if p.HasPart && part == p.Part {
					b.WriteString(`<li class="active">`)
				} else {
					b.WriteString("<li>")
				}
				b.WriteString(`<a target="messageBody" href="`)
				b.WriteString(templ.EscapeString(PartURL(p.MountPath, p.Preview, p.Email, part)))
				b.WriteString(`">`)
				b.WriteString(templ.EscapeString(part))
				b.WriteString("</a></li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</header><main>")
		if p.HasPart {
			b.WriteString(`<iframe name="messageBody" src="`)
			b.WriteString(templ.EscapeString(PartURL(p.MountPath, p.Preview, p.Email, p.Part)))
			b.WriteString(`"></iframe>`)
		} else {
			b.WriteString("<p>This email has no parts.</p>")
		}
		b.WriteString("</main></body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeHead(b *strings.Builder, title string) {
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
	b.WriteString(templ.EscapeString(title))
	b.WriteString("</title><style>")
	b.WriteString(style)
	b.WriteString("</style></head><body>")
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString("<dt>")
	b.WriteString(templ.EscapeString(name))
	b.WriteString(":</dt><dd>")
	b.WriteString(templ.EscapeString(value))
	b.WriteString("</dd>")
}
