package engine

import (
	"context"
	"fmt"

	"kidquest/internal/storage"
)

// JournalStickers are the stickers a journal entry may carry.
var JournalStickers = []string{"⭐", "🌈", "🎨", "🚀", "🌺", "🦋", "🌟", "🎭"}

// JournalRatings maps the 0-4 rating scale to faces.
var JournalRatings = []string{"😕", "😊", "🤗", "🥳", "🤩"}

// JournalView pairs a completion with its journal entry, if any.
type JournalView struct {
	Completion storage.Completion
	Entry      *storage.JournalEntry
}

// Journal returns the history newest-first with entries attached.
func (s *Service) Journal(ctx context.Context) ([]JournalView, error) {
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := storage.NewJournalRepo(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]JournalView, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		view := JournalView{Completion: history[i]}
		if e, ok := entries[history[i].ID]; ok {
			entry := e
			view.Entry = &entry
		}
		out = append(out, view)
	}
	return out, nil
}

// AnnotateCompletion upserts the journal entry for a completion. Entries are
// keyed by completion id, so re-annotating edits in place.
func (s *Service) AnnotateCompletion(ctx context.Context, completionID string, rating int, notes string, stickers []string) error {
	if rating < 0 || rating >= len(JournalRatings) {
		return fmt.Errorf("rating must be between 0 and %d", len(JournalRatings)-1)
	}
	comp, err := storage.NewCompletionRepo(s.db).Get(ctx, completionID)
	if err != nil {
		return err
	}
	if comp == nil {
		return fmt.Errorf("unknown completion: %q", completionID)
	}

	return storage.NewJournalRepo(s.db).Upsert(ctx, &storage.JournalEntry{
		CompletionID: completionID,
		Rating:       rating,
		Notes:        notes,
		Stickers:     stickers,
		UpdatedAt:    s.now(),
	})
}
