package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamefeed/gamefeed/shared/api"
	"github.com/gamefeed/gamefeed/shared/domain"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
)

func TestCreatePost(t *testing.T) {
	t.Run("with photo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/posts", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "Chess", r.FormValue("game"))
			assert.Equal(t, "4", r.FormValue("rating"))
			assert.Equal(t, "great \"game\"", r.FormValue("review"))

			f, fh, err := r.FormFile("photo")
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "board.png", fh.Filename)
			assert.Equal(t, "image/png", fh.Header.Get("Content-Type"))
			assert.Equal(t, []byte("png-bytes"), data)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(api.CreatePostResponse{Post: domain.Post{Id: "p1", Game: "Chess", Rating: 4}})
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		post, err := c.CreatePost(context.Background(), domain.PostSubmission{
			Game:   "Chess",
			Rating: 4,
			Review: "great \"game\"",
			Photo:  &domain.FileRef{Filename: "board.png", MimeType: "image/png", Data: []byte("png-bytes")},
		})
		require.NoError(t, err)
		assert.Equal(t, "p1", post.Id)
	})

	t.Run("without photo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Empty(t, r.MultipartForm.File["photo"])
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"post":{"_id":"p2"}}`))
		}))
		defer srv.Close()

		post, err := New(srv.URL, time.Second).CreatePost(context.Background(),
			domain.PostSubmission{Game: "Go", Rating: 5, Review: "deep"})
		require.NoError(t, err)
		assert.Equal(t, "p2", post.Id)
	})

	t.Run("rejected carries body and status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Network Error", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).CreatePost(context.Background(),
			domain.PostSubmission{Game: "Go", Rating: 5, Review: "deep"})
		require.Error(t, err)
		assert.Equal(t, "Network Error", err.Error())
		assert.Equal(t, http.StatusServiceUnavailable, internal_errors.StatusCode(err))
	})

	t.Run("backend unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := New(srv.URL, time.Second).CreatePost(context.Background(),
			domain.PostSubmission{Game: "Go", Rating: 5, Review: "deep"})
		assert.ErrorContains(t, err, "backend unavailable")
	})
}

func TestListGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/games", r.URL.Path)
		json.NewEncoder(w).Encode(api.GameListResponse{
			Games: []domain.Game{{Id: "1", Name: "Chess"}, {Id: "2", Name: "Go"}},
			Count: 2,
		})
	}))
	defer srv.Close()

	games, err := New(srv.URL, time.Second).ListGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.GameName{"Chess", "Go"}, domain.GameNames(games))
}

func TestListPosts(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCount int
		wantErr   bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"posts":[{"_id":"a"}],"count":7}`, wantCount: 7},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: true},
		{name: "invalid json", status: http.StatusOK, body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/posts", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			posts, count, err := New(srv.URL, time.Second).ListPosts(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, posts, 1)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
