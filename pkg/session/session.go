// Package session keeps auto-save snapshots of the working document.
//
// Every mutation of the document is written to a [Store] so an interrupted
// session can be resumed on the next start. Two backends are provided:
//   - file: JSON files under $XDG_CONFIG_HOME/matte/sessions for the CLI
//   - memory: an in-process map for tests
//
// Snapshots are stored under a name; the CLI uses [DefaultName].
//
//	store, err := session.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	doc, err := store.Get(ctx, session.DefaultName)
//	if err != nil {
//	    return err
//	}
//	if doc == nil {
//	    // nothing saved yet
//	}
package session

import (
	"context"
	"sync"

	"github.com/matzehuels/matte/pkg/settings"
)

// DefaultName is the snapshot slot used by the CLI.
const DefaultName = "autosave"

// Store persists document snapshots.
type Store interface {
	// Get returns the snapshot saved under name, migrated to the current
	// schema. It returns nil, nil if no snapshot exists.
	Get(ctx context.Context, name string) (*settings.Document, error)

	// Set stores a copy of doc under name, including its save file.
	Set(ctx context.Context, name string, doc *settings.Document) error

	// Delete removes the snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, name string) error
}

// MemoryStore keeps snapshots in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*settings.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*settings.Document)}
}

func (s *MemoryStore) Get(_ context.Context, name string) (*settings.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (s *MemoryStore) Set(_ context.Context, name string, doc *settings.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = doc.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, name)
	return nil
}

var _ Store = (*MemoryStore)(nil)
