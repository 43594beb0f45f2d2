package handler

import (
	"embed"
	"html/template"
	"time"

	"github.com/gamefeed/gamefeed/frontend/internal/markdown"
	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/config"
	"github.com/gamefeed/gamefeed/shared/validation"
)

// TemplateFS holds the page templates.
//
//go:embed templates/*.html
var TemplateFS embed.FS

// PostsAPI is the part of the posts API the pages use.
type PostsAPI interface {
	store.PostCreator
	store.PostLister
	store.GameLister
}

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	API           PostsAPI
	Limits        validation.Limits
	// HealthChecker is pinged by Ready; nil means nothing to check.
	HealthChecker HealthChecker
	// SubmitWait bounds how long a submit waits for the API before
	// redirecting back to the form.
	SubmitWait time.Duration
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor, api PostsAPI) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		API:           api,
		Limits: validation.Limits{
			Games:        publicCfg.Games,
			MaxPhotoSize: publicCfg.MaxPhotoSize,
			PhotoMimes:   publicCfg.AllowedPhotoMimeTypes,
		},
		SubmitWait: publicCfg.APITimeout,
	}
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}
