package models

// MaxFieldLen is the largest encoded size, in bytes, of any stored string.
const MaxFieldLen = 255

// ShortcutRecord is the persisted shape of a shortcut. CategoryIndex points
// into the catalog's category table.
type ShortcutRecord struct {
	Shortcut      string
	Description   string
	CategoryIndex uint32
}

// Shortcut is a record with its category name resolved.
type Shortcut struct {
	Shortcut    string `db:"shortcut"`
	Description string `db:"description"`
	Category    string `db:"category"`
}

type ShortcutInput struct {
	Shortcut    string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
}
