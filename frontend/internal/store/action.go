package store

import "github.com/gamefeed/gamefeed/shared/domain"

// Action is a state transition request. Type names follow the
// "<slice>/<action>" convention.
type Action interface {
	Type() string
}

const (
	TypeCreateNewPost           = "posts/createNewPost"
	TypeCreateNewPostPending    = "posts/createNewPost/pending"
	TypeCreateNewPostFulfilled  = "posts/createNewPost/fulfilled"
	TypeCreateNewPostRejected   = "posts/createNewPost/rejected"
	TypeUploadFile              = "posts/uploadFile"
	TypeResetPostCreationStatus = "posts/resetPostCreationStatus"
	TypeGetPosts                = "posts/getPosts"
	TypeGetPostsPending         = "posts/getPosts/pending"
	TypeGetPostsFulfilled       = "posts/getPosts/fulfilled"
	TypeGetPostsRejected        = "posts/getPosts/rejected"
	TypeGetGames                = "games/getGames"
	TypeGetGamesPending         = "games/getGames/pending"
	TypeGetGamesFulfilled       = "games/getGames/fulfilled"
	TypeGetGamesRejected        = "games/getGames/rejected"
)

// PostCreatedMsg is stored as postCreationMsg when the API accepts a post.
const PostCreatedMsg = "Post created"

type CreateNewPostPending struct{}

type CreateNewPostFulfilled struct {
	Post domain.Post
}

type CreateNewPostRejected struct {
	Msg string
}

// UploadFileAction updates the file preview. A nil Name clears it.
type UploadFileAction struct {
	Name *string
}

type ResetPostCreationStatusAction struct{}

type GetPostsPending struct{}

type GetPostsFulfilled struct {
	Posts []domain.Post
	Count int
}

type GetPostsRejected struct {
	Msg string
}

type GetGamesPending struct{}

type GetGamesFulfilled struct {
	Games []domain.Game
}

type GetGamesRejected struct {
	Msg string
}

func (CreateNewPostPending) Type() string          { return TypeCreateNewPostPending }
func (CreateNewPostFulfilled) Type() string        { return TypeCreateNewPostFulfilled }
func (CreateNewPostRejected) Type() string         { return TypeCreateNewPostRejected }
func (UploadFileAction) Type() string              { return TypeUploadFile }
func (ResetPostCreationStatusAction) Type() string { return TypeResetPostCreationStatus }
func (GetPostsPending) Type() string               { return TypeGetPostsPending }
func (GetPostsFulfilled) Type() string             { return TypeGetPostsFulfilled }
func (GetPostsRejected) Type() string              { return TypeGetPostsRejected }
func (GetGamesPending) Type() string               { return TypeGetGamesPending }
func (GetGamesFulfilled) Type() string             { return TypeGetGamesFulfilled }
func (GetGamesRejected) Type() string              { return TypeGetGamesRejected }

// UploadFile sets the file preview to name, or clears it when name is nil.
func UploadFile(name *string) Action {
	return UploadFileAction{Name: name}
}

// ResetPostCreationStatus puts the post form feedback back to idle.
func ResetPostCreationStatus() Action {
	return ResetPostCreationStatusAction{}
}
