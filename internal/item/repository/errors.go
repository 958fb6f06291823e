package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrNotFound is returned by UpdateItem and DeleteItem when no record matched.
	// GetOneItem signals absence with a zero Item instead.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned by CreateItem when the id is already stored.
	ErrDuplicateID = errors.New("duplicate record id")
)
