package document

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is used when a document is filed without a category.
const DefaultCategory = "uncategorized"

// Document is an archived text with its metadata. The store owns it; the
// search index only keeps its ID.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Metadata  Metadata  `json:"metadata"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New constructs a document stamped with the current time.
func New(id, title, content string, md Metadata, summary string) Document {
	now := time.Now().UTC()
	return Document{
		ID:        id,
		Title:     title,
		Content:   content,
		Metadata:  md,
		Summary:   summary,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewID returns a random document identity.
func NewID() string { return uuid.NewString() }

// WithSummary returns a copy carrying the given summary and a fresh UpdatedAt.
// CreatedAt is left untouched.
func (d Document) WithSummary(summary string) Document {
	d.Summary = summary
	d.UpdatedAt = time.Now().UTC()
	return d
}
