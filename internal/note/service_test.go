package note

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
)

func newTestService(t *testing.T) (Service, *FakeNoteRepository) {
	t.Helper()

	bus := event.NewMemoryBus()
	prog := progression.NewService(
		progression.NewFakeProgressRepository(),
		throttle.New(throttle.DefaultWindow, throttle.DefaultMaxEntries),
		monetization.NewPolicy(bus),
		bus,
	)
	repo := NewFakeNoteRepository()
	return NewService(repo, prog), repo
}

func TestCreateNoteRewardsSave(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.CreateNote(context.Background(), "Groceries", strings.Repeat("a", 500), []string{"home"})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.Note.ID)
	assert.Equal(t, "Groceries", saved.Note.Title)
	require.NotNil(t, saved.Reward)
	assert.Equal(t, 17, saved.Reward.XPGained)
	assert.Equal(t, 3, saved.Reward.CoinsGained)
}

func TestCreateNoteEmptyBody(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateNote(context.Background(), "title", "   ", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBody)
}

func TestCreateNoteCountsRunesNotBytes(t *testing.T) {
	svc, _ := newTestService(t)

	// 10 multibyte runes: base reward only, no length bonus.
	saved, err := svc.CreateNote(context.Background(), "t", strings.Repeat("ü", 10), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, saved.Reward.XPGained)
}

func TestUpdateNote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.CreateNote(ctx, "v1", "original body", nil)
	require.NoError(t, err)

	updated, err := svc.UpdateNote(ctx, saved.Note.ID, "v2", "new body", []string{"Work", "work", " "})
	require.NoError(t, err)

	assert.Equal(t, "v2", updated.Note.Title)
	assert.Equal(t, []string{"work"}, updated.Note.Tags)

	// Second save of the same note inside the window is throttled.
	require.NotNil(t, updated.Reward)
	assert.True(t, updated.Reward.Throttled)
}

func TestUpdateMissingNote(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateNote(context.Background(), "missing", "t", "body", nil)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestGetAndDeleteNote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.CreateNote(ctx, "t", "body", nil)
	require.NoError(t, err)

	got, err := svc.GetNote(ctx, saved.Note.ID)
	require.NoError(t, err)
	assert.Equal(t, "body", got.Body)

	require.NoError(t, svc.DeleteNote(ctx, saved.Note.ID))

	_, err = svc.GetNote(ctx, saved.Note.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, saved.Note.ID), domain.ErrNoteNotFound)
}

func TestImportText(t *testing.T) {
	svc, _ := newTestService(t)

	text := "First line title\nand the rest of the shared text"
	saved, err := svc.ImportText(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "First line title", saved.Note.Title)
	assert.Equal(t, text, saved.Note.Body)
	require.NotNil(t, saved.Reward)
	assert.False(t, saved.Reward.Throttled)
}

func TestImportTextTruncatesLongTitle(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.ImportText(context.Background(), strings.Repeat("x", 200))
	require.NoError(t, err)
	assert.Len(t, saved.Note.Title, MaxImportedTitleRunes)
}

func TestImportEmptyText(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ImportText(context.Background(), "  \n ")
	assert.ErrorIs(t, err, domain.ErrEmptyBody)
}
