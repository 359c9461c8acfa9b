package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrIncompleteDelete is returned by bulk deletes when at least one id did
// not match a live record. Nothing is deleted in that case.
var ErrIncompleteDelete = errors.New("one or more records not found")

// StorageError wraps failures raised by the persistence layer so callers can
// tell them apart from pre-write validation failures.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsConflict reports whether the write lost a race against a unique index.
func (e *StorageError) IsConflict() bool {
	return errors.Is(e.Err, gorm.ErrDuplicatedKey)
}

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
