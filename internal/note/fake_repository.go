package note

import (
	"context"
	"sort"
	"sync"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// FakeNoteRepository is an in-memory repository.Note for tests.
type FakeNoteRepository struct {
	mu    sync.Mutex
	notes map[string]domain.Note
}

func NewFakeNoteRepository() *FakeNoteRepository {
	return &FakeNoteRepository{notes: make(map[string]domain.Note)}
}

func (f *FakeNoteRepository) CreateNote(ctx context.Context, note *domain.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[note.ID] = *note
	return nil
}

func (f *FakeNoteRepository) UpdateNote(ctx context.Context, note *domain.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[note.ID] = *note
	return nil
}

func (f *FakeNoteRepository) GetNote(ctx context.Context, noteID string) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[noteID]
	if !ok {
		return nil, nil
	}
	clone := note
	return &clone, nil
}

func (f *FakeNoteRepository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Note, 0, len(f.notes))
	for _, note := range f.notes {
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *FakeNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notes, noteID)
	return nil
}
