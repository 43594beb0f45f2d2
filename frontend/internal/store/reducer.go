package store

import "github.com/gamefeed/gamefeed/shared/domain"

// Reducer computes the next state. It must not modify slices of the
// state it receives, snapshots handed out by State share them.
type Reducer func(state domain.RootState, action Action) domain.RootState

func rootReducer(state domain.RootState, action Action) domain.RootState {
	state.Posts = postsReducer(state.Posts, action)
	state.Games = gamesReducer(state.Games, action)
	return state
}

func postsReducer(state domain.PostsState, action Action) domain.PostsState {
	switch a := action.(type) {
	case CreateNewPostPending:
		state.Status = domain.StatusLoading
	case CreateNewPostFulfilled:
		state.Status = domain.StatusIdle
		state.PostCreationStatus = domain.PostCreationSuccess
		state.PostCreationMsg = PostCreatedMsg
		posts := make([]domain.Post, 0, len(state.Posts)+1)
		state.Posts = append(append(posts, a.Post), state.Posts...)
		state.PostsCount++
	case CreateNewPostRejected:
		state.Status = domain.StatusIdle
		state.PostCreationStatus = domain.PostCreationError
		state.PostCreationMsg = a.Msg
	case UploadFileAction:
		state.FilePreview = ""
		if a.Name != nil {
			state.FilePreview = *a.Name
		}
	case ResetPostCreationStatusAction:
		state.PostCreationStatus = domain.PostCreationIdle
		state.PostCreationMsg = ""
	case GetPostsPending:
		state.PostGetStatus = domain.StatusLoading
		state.PostGetMsg = ""
	case GetPostsFulfilled:
		state.PostGetStatus = domain.StatusSuccess
		state.Posts = append([]domain.Post{}, a.Posts...)
		state.PostsCount = a.Count
	case GetPostsRejected:
		state.PostGetStatus = domain.StatusError
		state.PostGetMsg = a.Msg
	}
	return state
}

func gamesReducer(state domain.GamesState, action Action) domain.GamesState {
	switch a := action.(type) {
	case GetGamesPending:
		state.GetGamesStatus = domain.StatusLoading
		state.GetGamesMsg = ""
	case GetGamesFulfilled:
		state.GetGamesStatus = domain.StatusSuccess
		state.Games = append([]domain.Game{}, a.Games...)
		state.GamesCount = len(a.Games)
	case GetGamesRejected:
		state.GetGamesStatus = domain.StatusError
		state.GetGamesMsg = a.Msg
	}
	return state
}
