package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type Color string

const (
	Yellow Color = "yellow"
	Purple Color = "purple"
	Blue   Color = "blue"
	Pink   Color = "pink"
	Green  Color = "green"
)

const (
	DefaultTitle = "Untitled Note"
	DefaultColor = Yellow
)

// Colors lists the note colors in the order the editor offers them.
var Colors = []Color{Yellow, Purple, Blue, Pink, Green}

func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   *string   `json:"summary,omitempty"`
	Color     Color     `json:"color"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteInput is the payload for a new note.
type NoteInput struct {
	Title   string  `json:"title" validate:"max=200"`
	Content string  `json:"content"`
	Color   Color   `json:"color" validate:"omitempty,note_color"`
	Summary *string `json:"summary,omitempty"`
}

// NotePatch carries the fields of an update; nil fields are left untouched.
type NotePatch struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content *string `json:"content,omitempty"`
	Color   *Color  `json:"color,omitempty" validate:"omitempty,note_color"`
	Summary *string `json:"summary,omitempty"`
}

func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Color == nil && p.Summary == nil
}

// Apply merges the patch into n and stamps UpdatedAt.
func (p NotePatch) Apply(n *Note, now time.Time) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Summary != nil {
		s := *p.Summary
		n.Summary = &s
	}
	n.UpdatedAt = now
}

func (n Note) HasSummary() bool {
	return n.Summary != nil && *n.Summary != ""
}

func (n Note) SummaryText() string {
	if n.Summary == nil {
		return ""
	}
	return *n.Summary
}

const previewLimit = 150

var previewStrip = []*regexp.Regexp{
	regexp.MustCompile(`#{1,6}\s?`),
	regexp.MustCompile(`\*\*`),
	regexp.MustCompile(`\*`),
	regexp.MustCompile("`"),
	regexp.MustCompile(`\[|\]\(.*\)`),
	regexp.MustCompile(`>`),
}

// Preview returns the content without markdown markers, cut to 150 characters.
func (n Note) Preview() string {
	text := n.Content
	for _, re := range previewStrip {
		text = re.ReplaceAllString(text, "")
	}
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}
	return string([]rune(text)[:previewLimit]) + "..."
}

// Matches reports whether query occurs in the title, content or summary, ignoring case.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(n.SummaryText()), q)
}
