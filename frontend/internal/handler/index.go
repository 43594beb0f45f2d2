package handler

import (
	"bytes"
	"html/template"
	"net/http"

	frontend_domain "github.com/gamefeed/gamefeed/frontend/internal/domain"
	"github.com/gamefeed/gamefeed/shared/logger"
	"github.com/gamefeed/gamefeed/shared/utils"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	s, err := sessionStore(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.ensureLoaded(r.Context(), s)

	state := s.State()
	form, err := h.postForm(state)
	if err != nil {
		logger.Log.Error("building post form", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var formHTML bytes.Buffer
	if err := form.RenderState(r.Context(), &formHTML, state); err != nil {
		logger.Log.Error("rendering post form", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := frontend_domain.IndexPageData{
		Form:       template.HTML(formHTML.String()),
		Posts:      h.renderPosts(state.Posts.Posts),
		PostsCount: state.Posts.PostsCount,
		FeedError:  state.Posts.PostGetMsg,
	}
	h.renderTemplate(w, r, "index.html", data)
}
