package postform

import "github.com/gamefeed/gamefeed/shared/domain"

const (
	FeedbackIdle    = "Post something new..."
	FeedbackSuccess = "Your post has been created!"
)

// Feedback is the line shown above the form for a post creation status.
// msg is only used for errors and is kept verbatim.
func Feedback(status domain.PostCreationStatus, msg string) string {
	switch status {
	case domain.PostCreationSuccess:
		return FeedbackSuccess
	case domain.PostCreationError:
		return "Error during post creation, please try again later (" + msg + ")."
	default:
		return FeedbackIdle
	}
}
