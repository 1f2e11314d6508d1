package domain

import "time"

// Item kinds. Themes are the only catalog kind today.
const (
	ItemKindTheme = "theme"
)

// OwnedItem is one catalog entry's ownership/equip state, keyed by item id.
// Rows are created lazily on first reference and never physically deleted.
type OwnedItem struct {
	ID         string     `json:"id" db:"item_id"`
	Kind       string     `json:"kind" db:"kind"`
	Owned      bool       `json:"owned" db:"owned"`
	Equipped   bool       `json:"equipped" db:"equipped"`
	ObtainedAt *time.Time `json:"obtained_at,omitempty" db:"obtained_at"`
}
