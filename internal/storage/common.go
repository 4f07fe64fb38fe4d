package storage

import "fmt"

// MagicMismatchError reports a file whose first byte is not the
// expected record tag (corrupt, foreign, or wrong-kind file).
type MagicMismatchError struct {
	Expected byte
	Found    byte
}

func (e *MagicMismatchError) Error() string {
	return fmt.Sprintf("storage: invalid magic: expected 0x%02X, found 0x%02X", e.Expected, e.Found)
}

// CapacityError reports an AddPage on a directory that already holds
// PagesPerDirectory entries. Count is the entry count at failure time.
type CapacityError struct {
	Count int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("storage: directory full: %d pages", e.Count)
}

// NameTooLongError reports a name that does not fit the fixed-width
// name field at construction time.
type NameTooLongError struct {
	Name string
	Max  int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("storage: name %q exceeds maximum length of %d", e.Name, e.Max)
}

// StorageError wraps an underlying open/create/read/write/close
// failure, including short reads, with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new storage error
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}
