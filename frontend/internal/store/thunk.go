package store

import (
	"context"

	"github.com/gamefeed/gamefeed/shared/domain"
)

// Thunk is an async action. Fn runs on its own goroutine with the store
// context, which is cancelled when the store closes.
type Thunk struct {
	Name string
	Fn   func(ctx context.Context, s *Store)
}

func (t Thunk) Type() string { return t.Name }

type PostCreator interface {
	CreatePost(ctx context.Context, sub domain.PostSubmission) (domain.Post, error)
}

type PostLister interface {
	ListPosts(ctx context.Context) ([]domain.Post, int, error)
}

type GameLister interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
}

// CreateNewPost sends sub to the posts API. The outcome lands in
// postCreationStatus and postCreationMsg.
func CreateNewPost(creator PostCreator, sub domain.PostSubmission) Action {
	return Thunk{
		Name: TypeCreateNewPost,
		Fn: func(ctx context.Context, s *Store) {
			s.dispatchFromThunk(TypeCreateNewPost, CreateNewPostPending{})

			post, err := creator.CreatePost(ctx, sub)
			if err != nil {
				s.log.Warn("create post failed", "game", sub.Game, "error", err)
				s.dispatchFromThunk(TypeCreateNewPost, CreateNewPostRejected{Msg: err.Error()})
				return
			}
			s.dispatchFromThunk(TypeCreateNewPost, CreateNewPostFulfilled{Post: post})
		},
	}
}

func FetchPosts(lister PostLister) Action {
	return Thunk{
		Name: TypeGetPosts,
		Fn: func(ctx context.Context, s *Store) {
			s.dispatchFromThunk(TypeGetPosts, GetPostsPending{})

			posts, count, err := lister.ListPosts(ctx)
			if err != nil {
				s.dispatchFromThunk(TypeGetPosts, GetPostsRejected{Msg: err.Error()})
				return
			}
			s.dispatchFromThunk(TypeGetPosts, GetPostsFulfilled{Posts: posts, Count: count})
		},
	}
}

func FetchGames(lister GameLister) Action {
	return Thunk{
		Name: TypeGetGames,
		Fn: func(ctx context.Context, s *Store) {
			s.dispatchFromThunk(TypeGetGames, GetGamesPending{})

			games, err := lister.ListGames(ctx)
			if err != nil {
				s.dispatchFromThunk(TypeGetGames, GetGamesRejected{Msg: err.Error()})
				return
			}
			s.dispatchFromThunk(TypeGetGames, GetGamesFulfilled{Games: games})
		},
	}
}

func (s *Store) dispatchFromThunk(thunk string, action Action) {
	if err := s.Dispatch(action); err != nil {
		s.log.Debug("thunk result dropped", "thunk", thunk, "action", action.Type(), "error", err)
	}
}
