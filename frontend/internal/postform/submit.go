package postform

import (
	"context"
	"fmt"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/domain"
)

// Submit sends sub, clears the file preview and arms the feedback reset.
// A later submit replaces a reset that has not fired yet.
func (f *Form) Submit(ctx context.Context, sub domain.PostSubmission) error {
	s, ok := store.FromContext(ctx)
	if !ok {
		return ErrNoStore
	}

	if err := s.Dispatch(store.CreateNewPost(f.creator, sub)); err != nil {
		return fmt.Errorf("dispatch create post: %w", err)
	}
	empty := ""
	if err := s.Dispatch(store.UploadFile(&empty)); err != nil {
		return fmt.Errorf("dispatch upload file: %w", err)
	}
	if err := s.Schedule(ResetKey, f.resetDelay, store.ResetPostCreationStatus()); err != nil {
		return fmt.Errorf("schedule feedback reset: %w", err)
	}
	return nil
}

// FileChanged reports a new photo selection. A nil name means the
// selection was cleared.
func (f *Form) FileChanged(ctx context.Context, name *string) error {
	s, ok := store.FromContext(ctx)
	if !ok {
		return ErrNoStore
	}
	return s.Dispatch(store.UploadFile(name))
}
