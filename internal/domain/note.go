package domain

import "time"

// Note is a stored note. Note CRUD is glue around the progression engine:
// every successful save fires exactly one saved event into the store.
type Note struct {
	ID        string    `json:"id" db:"note_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Tags      []string  `json:"tags" db:"tags"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
