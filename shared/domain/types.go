package domain

type (
	PostId   = string
	GameId   = string
	UserId   = string
	GameName = string
	Review   = string
)

// Status is the lifecycle of a request tracked by a state slice.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// PostCreationStatus drives the feedback line of the post form.
type PostCreationStatus string

const (
	PostCreationIdle    PostCreationStatus = "idle"
	PostCreationSuccess PostCreationStatus = "success"
	PostCreationError   PostCreationStatus = "error"
)
