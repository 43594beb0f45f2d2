package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	frontend_domain "github.com/gamefeed/gamefeed/frontend/internal/domain"
	"github.com/gamefeed/gamefeed/shared/csrf"
	"github.com/gamefeed/gamefeed/shared/domain"
	"github.com/gamefeed/gamefeed/shared/logger"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

func (h *Handler) initCommonTemplateData(r *http.Request) frontend_domain.CommonTemplateData {
	return frontend_domain.CommonTemplateData{
		CSRFToken: csrf.TokenFromContext(r.Context()),
		Validation: frontend_domain.ValidationData{
			ReviewMaxLen:          domain.ReviewMaxLen,
			MaxPhotoSizeBytes:     h.Limits.MaxPhotoSize,
			AllowedPhotoMimeTypes: h.Limits.PhotoMimes,
		},
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(r)
	if errMsg != "" {
		common.Error = errMsg
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// renderPost transforms a domain.Post into a frontend-specific view model.
func (h *Handler) renderPost(post domain.Post) *frontend_domain.Post {
	return &frontend_domain.Post{
		Post:   post,
		Review: h.TextProcessor.ProcessReview(post.Review),
		Stars:  stars(post.Rating),
	}
}

func (h *Handler) renderPosts(posts []domain.Post) []*frontend_domain.Post {
	rendered := make([]*frontend_domain.Post, len(posts))
	for i, p := range posts {
		rendered[i] = h.renderPost(p)
	}
	return rendered
}

func stars(rating int) string {
	rating = max(domain.MinRating, min(domain.MaxRating, rating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", domain.MaxRating-rating)
}
