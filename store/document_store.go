package store

import (
	"github.com/gcbaptista/search-server/model"
)

// DocumentStore keeps the rating and status of every document together with
// the order in which document IDs were added. Entries are never removed.
// The store is not safe for concurrent use; its owner serializes access.
type DocumentStore struct {
	Docs  map[int]model.DocumentData // Document ID to stored data
	Order []int                      // Document IDs in insertion order
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs:  make(map[int]model.DocumentData),
		Order: make([]int, 0),
	}
}

// Add records data for documentID. The caller must have checked Exists first;
// Add never overwrites an existing entry.
func (ds *DocumentStore) Add(documentID int, data model.DocumentData) bool {
	if _, exists := ds.Docs[documentID]; exists {
		return false
	}
	ds.Docs[documentID] = data
	ds.Order = append(ds.Order, documentID)
	return true
}

// Exists reports whether documentID has been added.
func (ds *DocumentStore) Exists(documentID int) bool {
	_, exists := ds.Docs[documentID]
	return exists
}

// Get returns the stored data for documentID.
func (ds *DocumentStore) Get(documentID int) (model.DocumentData, bool) {
	data, exists := ds.Docs[documentID]
	return data, exists
}

// Count returns the number of stored documents.
func (ds *DocumentStore) Count() int {
	return len(ds.Docs)
}

// IDAt returns the document ID added at position. ok is false when position
// is outside [0, Count).
func (ds *DocumentStore) IDAt(position int) (id int, ok bool) {
	if position < 0 || position >= len(ds.Order) {
		return 0, false
	}
	return ds.Order[position], true
}
