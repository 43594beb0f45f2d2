package validation

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gamefeed/gamefeed/shared/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form field names of the post form.
const (
	FieldGame   = "game"
	FieldRating = "rating"
	FieldReview = "review"
	FieldPhoto  = "photo"
)

// Limits are the server-side counterparts of the post form's native constraints.
type Limits struct {
	Games        []domain.GameName
	MaxPhotoSize int64
	PhotoMimes   []string
}

// ParsePostSubmission reads the post form from a multipart request.
func ParsePostSubmission(w http.ResponseWriter, r *http.Request, limits Limits) (domain.PostSubmission, error) {
	var sub domain.PostSubmission

	if err := ValidateAndParseMultipart(r, w, CalculateMaxRequestSize(limits.MaxPhotoSize, 1<<20)); err != nil {
		return sub, err
	}

	sub.Game = r.FormValue(FieldGame)
	// Browsers count maxlength with LF line breaks but submit CRLF.
	sub.Review = strings.TrimSpace(strings.ReplaceAll(r.FormValue(FieldReview), "\r\n", "\n"))
	if raw := r.FormValue(FieldRating); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return sub, fmt.Errorf("%w: rating must be an integer", ErrInvalidSubmission)
		}
		sub.Rating = rating
	}

	if files := r.MultipartForm.File[FieldPhoto]; len(files) > 0 {
		photo, err := ReadPhoto(files[0], limits.PhotoMimes, limits.MaxPhotoSize)
		if err != nil {
			return sub, err
		}
		sub.Photo = photo
	}

	if err := ValidateSubmission(sub, limits.Games); err != nil {
		return sub, err
	}
	return sub, nil
}

// ValidateSubmission checks the field constraints and that the game is
// one of the offered ones.
func ValidateSubmission(sub domain.PostSubmission, games []domain.GameName) error {
	if err := validate.Struct(sub); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidSubmission, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	if !slices.Contains(games, sub.Game) {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidSubmission, sub.Game)
	}
	return nil
}
