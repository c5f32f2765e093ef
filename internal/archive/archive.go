// Package archive composes the document store and the inverted index behind
// the operations used by the CLI and other collaborators.
package archive

import (
	"log/slog"
	"sync"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/retrieval"
	"github.com/KaramelBytes/docarchive-cli/internal/store"
)

// Archive is safe for concurrent use: Add takes a write lock, every other
// operation a read lock.
type Archive struct {
	mu     sync.RWMutex
	store  *store.Store
	index  *retrieval.Index
	logger *slog.Logger
}

// Option configures an Archive.
type Option func(*Archive)

// WithStore injects a caller-owned store.
func WithStore(s *store.Store) Option {
	return func(a *Archive) { a.store = s }
}

// WithIndex injects a caller-owned index.
func WithIndex(idx *retrieval.Index) Option {
	return func(a *Archive) { a.index = idx }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Archive) { a.logger = l }
}

// New returns an empty archive.
func New(opts ...Option) *Archive {
	a := &Archive{}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = store.New()
	}
	if a.index == nil {
		a.index = retrieval.NewIndex()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Add stores and indexes d and returns it unchanged. A document with an
// existing ID replaces the stored one.
func (a *Archive) Add(d document.Document) document.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	if replaced := a.store.Put(d); replaced {
		a.logger.Warn("document id reused; previous version replaced", "id", d.ID)
	}
	a.index.IndexDocument(d)
	a.logger.Debug("document added", "id", d.ID, "category", d.Metadata.Category)
	return d
}

// Search resolves query and filters through the index and returns the
// matching documents. Result order carries no meaning.
func (a *Archive) Search(query string, f retrieval.Filters) []document.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := a.index.Search(query, f)
	out := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		d, ok := a.store.Get(id)
		if !ok {
			a.logger.Debug("indexed id missing from store", "id", id)
			continue
		}
		out = append(out, d)
	}
	return out
}

// Get returns the document stored under id.
func (a *Archive) Get(id string) (document.Document, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.store.Get(id)
}

// GetAll returns every stored document in insertion order.
func (a *Archive) GetAll() []document.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.store.All()
}

// GetCategories lists the indexed categories.
func (a *Archive) GetCategories() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.index.Categories()
}

// GetAuthors lists the indexed authors.
func (a *Archive) GetAuthors() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.index.Authors()
}

// GetDateRange returns the earliest and latest creation days. ok is false
// for an empty archive.
func (a *Archive) GetDateRange() (retrieval.DateRange, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.index.DateRange()
}

// Len returns the number of stored documents.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.store.Len()
}
