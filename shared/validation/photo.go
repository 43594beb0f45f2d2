package validation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/gamefeed/gamefeed/shared/domain"
)

// ReadPhoto validates an uploaded photo and loads it into memory.
// A part with no filename and no content means no file was chosen and
// yields a nil FileRef.
func ReadPhoto(fileHeader *multipart.FileHeader, allowedMimes []string, maxSize int64) (*domain.FileRef, error) {
	if fileHeader == nil || (fileHeader.Filename == "" && fileHeader.Size == 0) {
		return nil, nil
	}
	if fileHeader.Size > maxSize {
		return nil, fmt.Errorf("%w: photo exceeds %.0f MB", ErrPayloadTooLarge, FormatSizeMB(maxSize))
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return nil, err
	}
	if !BuildAllowedMimeMap(allowedMimes)[mimeType] {
		return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: photo exceeds %.0f MB", ErrPayloadTooLarge, FormatSizeMB(maxSize))
	}

	width, height := ExtractImageDimensions(data, mimeType)
	return &domain.FileRef{
		Filename:    filepath.Base(fileHeader.Filename),
		MimeType:    mimeType,
		SizeBytes:   int64(len(data)),
		ImageWidth:  width,
		ImageHeight: height,
		Data:        data,
	}, nil
}

func BuildAllowedMimeMap(mimes []string) map[string]bool {
	allowedMimes := make(map[string]bool, len(mimes))
	for _, m := range mimes {
		allowedMimes[m] = true
	}
	return allowedMimes
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		if detected := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileHeader.Filename))); detected != "" {
			mimeType = detected
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	// drop parameters such as "; charset=binary"
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mediaType
	}
	return mimeType, nil
}

// ExtractImageDimensions decodes only the image header. Undecodable
// images are not an error, they simply have no dimensions.
func ExtractImageDimensions(data []byte, mimeType string) (*int, *int) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}

	width, height := cfg.Width, cfg.Height
	return &width, &height
}
