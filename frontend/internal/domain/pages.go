package frontend_domain

import "html/template"

type IndexPageData struct {
	Form       template.HTML // rendered post form
	Posts      []*Post
	PostsCount int
	FeedError  string
}
