package domain

const (
	ReviewMaxLen = 240
	MinRating    = 1
	MaxRating    = 5
)

// PhotoMimeTypes are the image types the post form accepts.
var PhotoMimeTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// FileRef is a photo picked in the post form. A submission without a photo
// carries a nil *FileRef.
type FileRef struct {
	Filename    string
	MimeType    string
	SizeBytes   int64
	ImageWidth  *int
	ImageHeight *int
	Data        []byte // read eagerly, the multipart temp file does not outlive the request
}

// PostSubmission holds the form fields of one post-form submit.
type PostSubmission struct {
	Game   GameName `validate:"required"`
	Rating int      `validate:"required,min=1,max=5"`
	Review Review   `validate:"required,max=240"`
	Photo  *FileRef
}

func (s PostSubmission) HasPhoto() bool {
	return s.Photo != nil
}
