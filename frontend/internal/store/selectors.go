package store

import "github.com/gamefeed/gamefeed/shared/domain"

func SelectPostsSlice(state domain.RootState) domain.PostsState {
	return state.Posts
}

func SelectGames(state domain.RootState) []domain.Game {
	return state.Games.Games
}

// SelectGameNames returns the names of the loaded games in order.
func SelectGameNames(state domain.RootState) []domain.GameName {
	return domain.GameNames(SelectGames(state))
}
