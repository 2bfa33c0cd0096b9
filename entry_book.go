package bourse

import (
	"sync"

	"github.com/google/uuid"
)

// EntryBook is the append-only transaction log, accumulated across all
// instruments and matching runs. It is only ever cleared through the
// owning Exchange's Reset.
type EntryBook struct {
	entries    []Entry
	byID       map[uuid.UUID]Entry
	entryMutex sync.RWMutex
}

func NewEntryBook() *EntryBook {
	return &EntryBook{
		entries: make([]Entry, 0, 1024),
		byID:    make(map[uuid.UUID]Entry),
	}
}

func (e *EntryBook) Append(entry Entry) {
	e.entryMutex.Lock()
	defer e.entryMutex.Unlock()

	e.entries = append(e.entries, entry)
	e.byID[entry.ID] = entry
}

func (e *EntryBook) Get(id uuid.UUID) (Entry, bool) {
	e.entryMutex.RLock()
	defer e.entryMutex.RUnlock()

	entry, ok := e.byID[id]
	return entry, ok
}

func (e *EntryBook) Len() int {
	e.entryMutex.RLock()
	defer e.entryMutex.RUnlock()
	return len(e.entries)
}

// Entries returns a copy of the log in append order.
func (e *EntryBook) Entries() []Entry {
	e.entryMutex.RLock()
	defer e.entryMutex.RUnlock()

	entriesCopy := make([]Entry, len(e.entries))
	copy(entriesCopy, e.entries)
	return entriesCopy
}

func (e *EntryBook) reset() {
	e.entryMutex.Lock()
	defer e.entryMutex.Unlock()

	e.entries = make([]Entry, 0, 1024)
	e.byID = make(map[uuid.UUID]Entry)
}
