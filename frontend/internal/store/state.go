package store

import "github.com/gamefeed/gamefeed/shared/domain"

// PreloadedState overrides slices of the default state. Nil slices keep
// their default value.
type PreloadedState struct {
	Auth  *domain.AuthState
	Posts *domain.PostsState
	Users *domain.UsersState
	Games *domain.GamesState
}

// Resolve merges p over domain.DefaultState.
func (p PreloadedState) Resolve() domain.RootState {
	state := domain.DefaultState()
	if p.Auth != nil {
		state.Auth = *p.Auth
	}
	if p.Posts != nil {
		state.Posts = *p.Posts
	}
	if p.Users != nil {
		state.Users = *p.Users
	}
	if p.Games != nil {
		state.Games = *p.Games
	}
	return state
}
