package bourse

import "github.com/google/uuid"

// EntryRepository persists executed entries.
type EntryRepository interface {
	Store(entry Entry) error
	GetByID(id uuid.UUID) (Entry, error)
}

var NOPEntryRepository = &nopEntryRepository{}

type nopEntryRepository struct {
}

func (n *nopEntryRepository) Store(entry Entry) error {
	return nil
}

func (n *nopEntryRepository) GetByID(id uuid.UUID) (Entry, error) {
	return Entry{}, nil
}
