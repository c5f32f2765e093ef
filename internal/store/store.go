// Package store holds archived documents keyed by identity. It does no
// indexing and no locking; the archive serializes access to it.
package store

import "github.com/KaramelBytes/docarchive-cli/internal/document"

// Store is an insertion-ordered map of documents.
type Store struct {
	docs  map[string]document.Document
	order []string
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[string]document.Document)}
}

// Put stores d under d.ID and reports whether an existing document was
// replaced. A replaced document keeps its original position in All.
func (s *Store) Put(d document.Document) (replaced bool) {
	_, replaced = s.docs[d.ID]
	if !replaced {
		s.order = append(s.order, d.ID)
	}
	d.Metadata = d.Metadata.Clone()
	s.docs[d.ID] = d
	return replaced
}

// Get returns the document stored under id.
func (s *Store) Get(id string) (document.Document, bool) {
	d, ok := s.docs[id]
	if !ok {
		return document.Document{}, false
	}
	d.Metadata = d.Metadata.Clone()
	return d, true
}

// All returns every document in insertion order.
func (s *Store) All() []document.Document {
	out := make([]document.Document, 0, len(s.order))
	for _, id := range s.order {
		d := s.docs[id]
		d.Metadata = d.Metadata.Clone()
		out = append(out, d)
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int { return len(s.docs) }
