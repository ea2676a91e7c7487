package mailpreview

import (
	"net/http"

	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/logger"
	"github.com/dmitrymomot/mailpreview/core/response"
	"github.com/dmitrymomot/mailpreview/mailpreview/views"
)

// IndexDocument is the JSON form of the index page.
type IndexDocument struct {
	Previews []PreviewSummary `json:"previews"`
}

// PreviewSummary names a preview and its emails.
type PreviewSummary struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}

// Index lists every preview with its emails, as HTML or as JSON when the
// client asks for it with Accept or ?format=json.
func Index[C handler.Context](p *Plugin) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		previews, err := p.Previews(ctx)
		if err != nil {
			return response.Error(err)
		}

		doc := IndexDocument{Previews: make([]PreviewSummary, 0, len(previews))}
		for _, pv := range previews {
			emails := pv.Emails()
			if emails == nil {
				emails = []string{}
			}
			doc.Previews = append(doc.Previews, PreviewSummary{Name: pv.Name(), Emails: emails})
		}

		if wantsJSON(ctx.Request()) {
			return response.JSON(doc)
		}

		page := views.IndexPage{MountPath: p.mountPath}
		for _, s := range doc.Previews {
			page.Previews = append(page.Previews, views.PreviewItem{Name: s.Name, Emails: s.Emails})
		}
		return response.Templ(views.Index(page))
	}
}

// ShowEmail serves /{preview}/{email}. Without a part query it renders the
// email page; with one it writes that part raw with the part type as
// Content-Type and debug disabled for the rest of the request.
func ShowEmail[C handler.Context](p *Plugin) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		previewName, emailName := ctx.Param("preview"), ctx.Param("email")

		previews, err := p.Previews(ctx)
		if err != nil {
			return response.Error(err)
		}
		_, build, err := Resolve(previews, previewName, emailName)
		if err != nil {
			return response.Error(err)
		}

		email, err := build(ctx)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to build preview email",
				logger.Component("mailpreview"), logger.Preview(previewName),
				logger.Key("email", emailName), logger.Error(err))
			return response.Error(buildFailed(previewName, emailName, err))
		}
		if email == nil {
			email = NewEmail("")
		}

		partType := ctx.Request().URL.Query().Get("part")
		if partType != "" {
			content, ok := email.Part(partType)
			if !ok {
				return response.Error(partNotFound(partType, previewName, emailName))
			}
			debug.Disable(ctx)
			return response.Bytes([]byte(content), partType)
		}

		page := views.EmailPage{
			Title:     "Mailer Preview for " + previewName + "::" + emailName,
			MountPath: p.mountPath,
			Preview:   previewName,
			Email:     emailName,
			Subject:   email.Title(),
			Parts:     email.PartTypes(),
		}
		for _, h := range email.Headers() {
			page.Headers = append(page.Headers, views.Header{Name: h.Name, Value: h.Value})
		}
		page.Part, page.HasPart = PreferredPart(email, "")
		return response.Templ(views.Email(page))
	}
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "json" || response.WantsJSON(r)
}
