package handler

import (
	"context"
	"net/http"

	"github.com/gamefeed/gamefeed/frontend/internal/postform"
	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/domain"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
	"github.com/gamefeed/gamefeed/shared/logger"
)

var errNoSession = &internal_errors.ErrorWithStatusCode{Message: "session unavailable", StatusCode: http.StatusInternalServerError}

func sessionStore(r *http.Request) (*store.Store, error) {
	s, ok := store.FromContext(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return s, nil
}

// offeredGames prefers the games loaded from the API and falls back to
// the configured list.
func (h *Handler) offeredGames(state domain.RootState) []domain.GameName {
	if names := store.SelectGameNames(state); len(names) > 0 {
		return names
	}
	return h.Public.Games
}

func (h *Handler) postForm(state domain.RootState) (*postform.Form, error) {
	return postform.New(h.offeredGames(state), h.API, h.Public.FeedbackResetDelay)
}

// ensureLoaded fetches posts and games the first time a session renders
// the page.
func (h *Handler) ensureLoaded(ctx context.Context, s *store.Store) {
	state := s.State()
	fetched := false
	if state.Posts.PostGetStatus == domain.StatusIdle {
		if err := s.Dispatch(store.FetchPosts(h.API)); err == nil {
			fetched = true
		}
	}
	if state.Games.GetGamesStatus == domain.StatusIdle {
		if err := s.Dispatch(store.FetchGames(h.API)); err == nil {
			fetched = true
		}
	}
	if fetched {
		h.waitThunks(ctx, s)
	}
}

func (h *Handler) waitThunks(ctx context.Context, s *store.Store) {
	if h.SubmitWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.SubmitWait)
		defer cancel()
	}
	if err := s.WaitContext(ctx); err != nil {
		logger.Log.Debug("stopped waiting for store", "error", err)
	}
}
