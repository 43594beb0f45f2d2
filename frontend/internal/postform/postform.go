// Package postform renders the review form and turns its events into
// store actions.
package postform

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/csrf"
	"github.com/gamefeed/gamefeed/shared/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

const (
	DefaultResetDelay = 5 * time.Second

	// ResetKey identifies the scheduled feedback reset in the store.
	ResetKey = "postform/reset"

	SubmitPath = "/posts"
	PhotoPath  = "/posts/photo"
	StatusPath = "/api/posts/status"
)

var (
	ErrNoGames = errors.New("post form needs at least one game")
	ErrNoStore = errors.New("no store in context")
)

type Form struct {
	games      []domain.GameName
	creator    store.PostCreator
	resetDelay time.Duration
}

// New builds a form offering games. A non-positive resetDelay falls back
// to DefaultResetDelay.
func New(games []domain.GameName, creator store.PostCreator, resetDelay time.Duration) (*Form, error) {
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Form{
		games:      append([]domain.GameName(nil), games...),
		creator:    creator,
		resetDelay: resetDelay,
	}, nil
}

func (f *Form) ResetDelay() time.Duration {
	return f.resetDelay
}

type view struct {
	Action       string
	PhotoAction  string
	StatusAction string
	CSRFToken    string
	Status       domain.PostCreationStatus
	Feedback     string
	Games        []domain.GameName
	Ratings      []int
	ReviewMaxLen int
	Accept       string
	FilePreview  string
}

// Render writes the form for the state of the store carried by ctx.
func (f *Form) Render(ctx context.Context, w io.Writer) error {
	s, ok := store.FromContext(ctx)
	if !ok {
		return ErrNoStore
	}
	return f.RenderState(ctx, w, s.State())
}

// RenderState writes the form for an explicit state snapshot.
func (f *Form) RenderState(ctx context.Context, w io.Writer, state domain.RootState) error {
	posts := store.SelectPostsSlice(state)
	v := view{
		Action:       SubmitPath,
		PhotoAction:  PhotoPath,
		StatusAction: StatusPath,
		CSRFToken:    csrf.TokenFromContext(ctx),
		Status:       posts.PostCreationStatus,
		Feedback:     Feedback(posts.PostCreationStatus, posts.PostCreationMsg),
		Games:        f.games,
		Ratings:      ratings(),
		ReviewMaxLen: domain.ReviewMaxLen,
		Accept:       strings.Join(domain.PhotoMimeTypes, ","),
		FilePreview:  posts.FilePreview,
	}
	if err := formTemplate.ExecuteTemplate(w, "postform", v); err != nil {
		return fmt.Errorf("render post form: %w", err)
	}
	return nil
}

func ratings() []int {
	out := make([]int, 0, domain.MaxRating-domain.MinRating+1)
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		out = append(out, r)
	}
	return out
}
