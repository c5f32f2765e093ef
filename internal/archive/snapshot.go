package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

const snapshotFileName = "archive.json"

// snapshotVersion is bumped when the file layout changes incompatibly.
const snapshotVersion = 1

// Snapshot is the on-disk form of an archive. The archive itself keeps
// nothing on disk; the CLI loads a snapshot on start and saves one after
// mutating commands.
type Snapshot struct {
	Version   int                 `json:"version"`
	Documents []document.Document `json:"documents"`
	SavedAt   time.Time           `json:"saved_at"`
}

// SnapshotPath returns the snapshot file location inside dir.
func SnapshotPath(dir string) string {
	return filepath.Join(dir, snapshotFileName)
}

// LoadSnapshot reads the snapshot in dir. A missing file yields an empty
// snapshot.
func LoadSnapshot(dir string) (*Snapshot, error) {
	b, err := os.ReadFile(SnapshotPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Snapshot{Version: snapshotVersion}, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if s.Version == 0 {
		s.Version = snapshotVersion
	}
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", s.Version, snapshotVersion)
	}
	return &s, nil
}

// Restore adds every snapshot document to a, keeping their timestamps.
func (s *Snapshot) Restore(a *Archive) {
	for _, d := range s.Documents {
		a.Add(d)
	}
}

// SnapshotOf captures the current contents of a, ordered by creation time
// and then ID.
func SnapshotOf(a *Archive) *Snapshot {
	docs := a.GetAll()
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return &Snapshot{Version: snapshotVersion, Documents: docs}
}

// Save writes the snapshot to dir using an atomic rename.
func (s *Snapshot) Save(dir string) error {
	if dir == "" {
		return errors.New("archive directory not set")
	}
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	if s.Documents == nil {
		s.Documents = []document.Document{}
	}
	s.SavedAt = time.Now().UTC()
	data, err := utils.PrettyJSON(s)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(SnapshotPath(dir), data)
}

// Open builds an archive from the snapshot in dir.
func Open(dir string, opts ...Option) (*Archive, error) {
	s, err := LoadSnapshot(dir)
	if err != nil {
		return nil, err
	}
	a := New(opts...)
	s.Restore(a)
	a.logger.Debug("archive opened", "dir", dir, "documents", len(s.Documents))
	return a, nil
}
