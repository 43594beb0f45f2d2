package handler

import (
	"errors"
	"net/http"

	"github.com/gamefeed/gamefeed/frontend/internal/postform"
	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/api"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
	"github.com/gamefeed/gamefeed/shared/logger"
	"github.com/gamefeed/gamefeed/shared/utils"
	"github.com/gamefeed/gamefeed/shared/validation"
)

// PhotoNameField carries the picked file name on POST /posts/photo. An
// absent or empty value clears the preview.
const PhotoNameField = "name"

// PostCreateHandler accepts the post form and redirects back to the page.
func (h *Handler) PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	s, err := sessionStore(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	state := s.State()
	limits := h.Limits
	limits.Games = h.offeredGames(state)

	sub, err := validation.ParsePostSubmission(w, r, limits)
	if err != nil {
		logger.Log.Debug("rejected post submission", "error", err)
		utils.WriteErrorAndStatusCode(w, submissionError(err))
		return
	}

	form, err := h.postForm(state)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := form.Submit(r.Context(), sub); err != nil {
		logger.Log.Error("submitting post", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.waitThunks(r.Context(), s)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PhotoChangeHandler records the picked file name for the preview.
func (h *Handler) PhotoChangeHandler(w http.ResponseWriter, r *http.Request) {
	s, err := sessionStore(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.BadRequest("Invalid form data"))
		return
	}

	var name *string
	if v := r.PostForm.Get(PhotoNameField); v != "" {
		name = &v
	}
	if err := s.Dispatch(store.UploadFile(name)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostStatusHandler returns the post form feedback for polling.
func (h *Handler) PostStatusHandler(w http.ResponseWriter, r *http.Request) {
	s, err := sessionStore(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	posts := store.SelectPostsSlice(s.State())
	utils.WriteJSON(w, api.PostFormStatusResponse{
		PostCreationStatus: posts.PostCreationStatus,
		PostCreationMsg:    posts.PostCreationMsg,
		FilePreview:        posts.FilePreview,
		Feedback:           postform.Feedback(posts.PostCreationStatus, posts.PostCreationMsg),
	})
}

func submissionError(err error) error {
	switch {
	case errors.Is(err, validation.ErrPayloadTooLarge):
		return &internal_errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusRequestEntityTooLarge}
	default:
		return internal_errors.BadRequest(err.Error())
	}
}
