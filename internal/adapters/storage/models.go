package storage

import "time"

// HotkeyAssignmentModel is the GORM model for the hotkey_assignments table.
// A NULL chord marks an action the user explicitly left unassigned; SQLite
// allows any number of NULLs under the unique index.
type HotkeyAssignmentModel struct {
	Action    string  `gorm:"primaryKey"`
	Chord     *string `gorm:"uniqueIndex:idx_hotkey_chord;default:null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (HotkeyAssignmentModel) TableName() string { return "hotkey_assignments" }
