package document

import "strings"

// Metadata is the finalized descriptive data of a document. Values are built
// through MetadataDraft so slices are never shared with the caller.
type Metadata struct {
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description,omitempty"`
	ReadingTime int      `json:"reading_time"`
}

// MetadataDraft collects metadata in several steps before it is attached to
// a document. Build copies everything, so a draft may be reused afterwards.
type MetadataDraft struct {
	Tags        []string
	Author      string
	Category    string
	Keywords    []string
	Description string
	readingTime int
}

// SetReadingTime records the reading time in minutes. Negative values are
// stored as zero.
func (d *MetadataDraft) SetReadingTime(minutes int) *MetadataDraft {
	if minutes < 0 {
		minutes = 0
	}
	d.readingTime = minutes
	return d
}

// Build finalizes the draft.
func (d *MetadataDraft) Build() Metadata {
	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = DefaultCategory
	}
	return Metadata{
		Tags:        clone(d.Tags),
		Author:      d.Author,
		Category:    category,
		Keywords:    clone(d.Keywords),
		Description: d.Description,
		ReadingTime: d.readingTime,
	}
}

// Clone returns a deep copy.
func (m Metadata) Clone() Metadata {
	m.Tags = clone(m.Tags)
	m.Keywords = clone(m.Keywords)
	return m
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
