package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// NoteRepository implements the note repository for PostgreSQL
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) CreateNote(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (note_id, title, body, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query, note.ID, note.Title, note.Body, note.Tags, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) UpdateNote(ctx context.Context, note *domain.Note) error {
	query := `
		UPDATE notes
		SET title = $1, body = $2, tags = $3, updated_at = $4
		WHERE note_id = $5
	`

	tag, err := r.db.Exec(ctx, query, note.Title, note.Body, note.Tags, note.UpdatedAt, note.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// GetNote returns nil without error when the note does not exist.
func (r *NoteRepository) GetNote(ctx context.Context, noteID string) (*domain.Note, error) {
	query := `
		SELECT note_id, title, body, tags, created_at, updated_at
		FROM notes
		WHERE note_id = $1
	`

	var note domain.Note
	err := r.db.QueryRow(ctx, query, noteID).Scan(&note.ID, &note.Title, &note.Body, &note.Tags, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	query := `
		SELECT note_id, title, body, tags, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.Tags, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE note_id = $1`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
