package note

import (
	"errors"
	"fmt"
	"strings"
)

// SlotKey is the key holding the serialized collection in the durable slot
const SlotKey = "mynotes"

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidView  = errors.New("invalid view")
	ErrMissingId    = errors.New("note has no id")
)

// Color is the tag used to paint a note card
type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorTeal    Color = "teal"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
)

// Colors lists every accepted color, in picker order
var Colors = []Color{
	ColorDefault, ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorTeal, ColorBlue, ColorPurple, ColorPink,
}

func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// View selects which notes are shown
type View string

const (
	ViewNotes   View = "notes"
	ViewLabels  View = "labels"
	ViewArchive View = "archive"
	ViewTrash   View = "trash"
)

// ParseView validates a view coming from user input, empty means ViewNotes
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewNotes, nil
	case ViewNotes, ViewLabels, ViewArchive, ViewTrash:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
}

type Note struct {
	Id         string `json:"id" example:"0190c3b4-5c1e-7a53-9f2e-3c2a9e0d1f10"`
	Title      string `json:"title" example:"my note"`
	Content    string `json:"content" example:"my note content"`
	Color      Color  `json:"color" example:"default"`
	IsPinned   bool   `json:"isPinned" example:"false"`
	IsArchived bool   `json:"isArchived" example:"false"`
	IsDeleted  bool   `json:"isDeleted" example:"false"`
	CreatedAt  int64  `json:"createdAt" example:"1700000000000"`
	UpdatedAt  int64  `json:"updatedAt" example:"1700000000000"`
}

type NewNote struct {
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note content"`
}

// Patch holds the fields to merge into a note, nil fields are left untouched
type Patch struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Color      *Color  `json:"color,omitempty"`
	IsPinned   *bool   `json:"isPinned,omitempty"`
	IsArchived *bool   `json:"isArchived,omitempty"`
	IsDeleted  *bool   `json:"isDeleted,omitempty"`
}

func (p Patch) apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.IsPinned != nil {
		n.IsPinned = *p.IsPinned
	}
	if p.IsArchived != nil {
		n.IsArchived = *p.IsArchived
		// archiving clears the pin, same as Archive
		if n.IsArchived {
			n.IsPinned = false
		}
	}
	if p.IsDeleted != nil {
		n.IsDeleted = *p.IsDeleted
	}
}

// Prepare checks a collection supplied from outside before it replaces the
// stored one. Blank colors become ColorDefault in place.
func Prepare(notes []Note) error {
	for i := range notes {
		n := &notes[i]
		if n.Id == "" {
			return fmt.Errorf("note %d: %w", i, ErrMissingId)
		}
		if n.Color == "" {
			n.Color = ColorDefault
			continue
		}
		if !n.Color.Valid() {
			return fmt.Errorf("note %s: %w: %q", n.Id, ErrInvalidColor, n.Color)
		}
	}
	return nil
}

// Visible is the filtered collection for a view, split by pin state
type Visible struct {
	Pinned   []Note `json:"pinned"`
	Unpinned []Note `json:"unpinned"`
}
