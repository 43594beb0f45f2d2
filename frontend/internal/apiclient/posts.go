package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/gamefeed/gamefeed/shared/api"
	"github.com/gamefeed/gamefeed/shared/domain"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
	"github.com/gamefeed/gamefeed/shared/utils"
	"github.com/gamefeed/gamefeed/shared/validation"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// CreatePost sends a post submission as multipart/form-data. The photo,
// when present, goes in its own part.
func (c *APIClient) CreatePost(ctx context.Context, sub domain.PostSubmission) (domain.Post, error) {
	bodyBytes, statusCode, err := c.postMultipartRequest(ctx, "/v1/posts", sub)
	if err != nil {
		return domain.Post{}, err
	}
	if statusCode != http.StatusCreated {
		msg := strings.TrimSpace(string(bodyBytes))
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: statusCode}
	}

	var response api.CreatePostResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return domain.Post{}, fmt.Errorf("cannot decode create post response: %w", err)
	}
	return response.Post, nil
}

func (c *APIClient) ListPosts(ctx context.Context) ([]domain.Post, int, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/posts", nil)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, &internal_errors.ErrorWithStatusCode{
			Message: "failed to fetch posts", StatusCode: resp.StatusCode,
		}
	}

	var list api.PostListResponse
	if err := utils.Decode(resp.Body, &list); err != nil {
		return nil, 0, fmt.Errorf("cannot decode post list: %w", err)
	}
	return list.Posts, list.Count, nil
}

// postMultipartRequest streams the submission through a pipe so the photo
// is never buffered twice.
func (c *APIClient) postMultipartRequest(ctx context.Context, path string, sub domain.PostSubmission) ([]byte, int, error) {
	pipeReader, pipeWriter := io.Pipe()
	writer := multipart.NewWriter(pipeWriter)

	go func() {
		defer pipeWriter.Close()
		defer writer.Close()

		fields := [][2]string{
			{validation.FieldGame, sub.Game},
			{validation.FieldRating, strconv.Itoa(sub.Rating)},
			{validation.FieldReview, sub.Review},
		}
		for _, f := range fields {
			if err := writer.WriteField(f[0], f[1]); err != nil {
				pipeWriter.CloseWithError(err)
				return
			}
		}

		if !sub.HasPhoto() {
			return
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				validation.FieldPhoto, escapeQuotes(sub.Photo.Filename)))
		if sub.Photo.MimeType != "" {
			h.Set("Content-Type", sub.Photo.MimeType)
		}

		part, err := writer.CreatePart(h)
		if err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, bytes.NewReader(sub.Photo.Data)); err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, pipeReader)
	if err != nil {
		pipeReader.Close()
		return nil, 0, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("backend unavailable: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	return bodyBytes, resp.StatusCode, nil
}
