package api

import "github.com/gamefeed/gamefeed/shared/domain"

// Responses of the posts API consumed by the front-end

type CreatePostResponse struct {
	Post domain.Post `json:"post"`
}

type PostListResponse struct {
	Posts []domain.Post `json:"posts"`
	Count int           `json:"count"`
}

type GameListResponse struct {
	Games []domain.Game `json:"games"`
	Count int           `json:"count"`
}

// PostFormStatusResponse is what the post form polls to refresh its
// feedback line without reloading the page.
type PostFormStatusResponse struct {
	PostCreationStatus domain.PostCreationStatus `json:"postCreationStatus"`
	PostCreationMsg    string                    `json:"postCreationMsg"`
	FilePreview        string                    `json:"filePreview"`
	Feedback           string                    `json:"feedback"`
}
