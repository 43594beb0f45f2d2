package frontend_domain

import (
	"html/template"

	"github.com/gamefeed/gamefeed/shared/domain"
)

// Post wraps domain.Post with its rendered review.
type Post struct {
	domain.Post
	Review template.HTML
	Stars  string
}
