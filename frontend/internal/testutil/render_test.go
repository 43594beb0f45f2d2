package testutil

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/domain"
)

var stateTmpl = template.Must(template.New("state").Parse(
	`<div data-testid="state"><span data-testid="feedback">{{.Posts.PostCreationStatus}}</span>` +
		`{{range .Games.Games}}<i data-testid="game">{{.Name}}</i>{{end}}</div>`))

type stateComponent struct{}

func (stateComponent) Render(ctx context.Context, w io.Writer) error {
	s, ok := store.FromContext(ctx)
	if !ok {
		return fmt.Errorf("no store")
	}
	return stateTmpl.Execute(w, s.State())
}

func TestRenderWithProvidersDefaults(t *testing.T) {
	r := RenderWithProviders(t, stateComponent{}, Options{})

	assert.Equal(t, domain.DefaultState(), r.Store.State())
	assert.Equal(t, "idle", Text(r.ByTestID("feedback")))
	assert.Empty(t, r.AllByTestID("game"))
	assert.Nil(t, r.ByTestID("missing"))
}

func TestRenderWithProvidersPartialOverride(t *testing.T) {
	games := domain.DefaultGamesState()
	games.Games = []domain.Game{{Id: "1", Name: "Chess"}, {Id: "2", Name: "Go"}}
	games.GamesCount = 2

	r := RenderWithProviders(t, stateComponent{}, Options{
		PreloadedState: store.PreloadedState{Games: &games},
	})

	state := r.Store.State()
	assert.Equal(t, games, state.Games)
	assert.Equal(t, domain.DefaultPostsState(), state.Posts)
	assert.Equal(t, domain.DefaultAuthState(), state.Auth)
	assert.Equal(t, domain.DefaultUsersState(), state.Users)

	nodes := r.AllByTestID("game")
	require.Len(t, nodes, 2)
	assert.Equal(t, "Chess", Text(nodes[0]))
	assert.Equal(t, "Go", Text(nodes[1]))
}

func TestRenderWithProvidersStore(t *testing.T) {
	s := store.New(domain.DefaultState())
	t.Cleanup(s.Close)
	require.NoError(t, s.Dispatch(store.CreateNewPostRejected{Msg: "x"}))

	r := RenderWithProviders(t, stateComponent{}, Options{Store: s})
	assert.Same(t, s, r.Store)
	assert.Equal(t, "error", Text(r.ByTestID("feedback")))

	require.NoError(t, s.Dispatch(store.ResetPostCreationStatus()))
	r.Rerender(t, stateComponent{})
	assert.Equal(t, "idle", Text(r.ByTestID("feedback")))
}

func TestAttrAndText(t *testing.T) {
	r := RenderWithProviders(t, stateComponent{}, Options{})
	n := r.ByTestID("state")

	v, ok := Attr(n, "data-testid")
	assert.True(t, ok)
	assert.Equal(t, "state", v)

	_, ok = Attr(n, "class")
	assert.False(t, ok)
	assert.Equal(t, "idle", Text(n))
	assert.Len(t, Children(n, "span"), 1)
}
