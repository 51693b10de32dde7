// Package errors provides custom error types for the repobook system.
// These errors enable programmatic error checking, distinct exit codes
// per failure class, and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the repobook system
var (
	// ErrInvalidEntry indicates that user input to add was invalid
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrIndexOutOfRange indicates a delete target outside the catalog bounds
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCorruptStore indicates the catalog document exists but cannot be parsed
	ErrCorruptStore = errors.New("corrupt store")

	// ErrFetchFailed indicates the metadata collaborator failed; callers
	// degrade to "no metadata" and never surface this as a command failure
	ErrFetchFailed = errors.New("metadata fetch failed")
)

// InvalidEntryError represents bad user input to the add operation
type InvalidEntryError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InvalidEntryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid entry: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid entry: %s", e.Message)
}

// Is implements errors.Is support
func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// NewInvalidEntryError creates a new InvalidEntryError
func NewInvalidEntryError(field, message string) *InvalidEntryError {
	return &InvalidEntryError{Field: field, Message: message}
}

// IndexOutOfRangeError represents a positional delete outside [1, len]
type IndexOutOfRangeError struct {
	Position int
	Length   int
}

// Error implements the error interface
func (e *IndexOutOfRangeError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("position %d out of range: catalog is empty", e.Position)
	}
	return fmt.Sprintf("position %d out of range [1, %d]", e.Position, e.Length)
}

// Is implements errors.Is support
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NewIndexOutOfRangeError creates a new IndexOutOfRangeError
func NewIndexOutOfRangeError(position, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Position: position, Length: length}
}

// CorruptStoreError represents a catalog document that exists but cannot
// be parsed. A missing document is not an error and never produces this.
type CorruptStoreError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *CorruptStoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("corrupt catalog document %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("corrupt catalog document: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

// NewCorruptStoreError creates a new CorruptStoreError
func NewCorruptStoreError(path string, err error) *CorruptStoreError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &CorruptStoreError{Path: path, Message: message, Err: err}
}

// FetchError represents a failure of the best-effort metadata collaborator.
// It is always swallowed by the caller into absent metadata.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("metadata fetch for %s failed (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("metadata fetch for %s failed: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &FetchError{URL: url, StatusCode: statusCode, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsInvalidEntry checks if an error is an invalid entry error
func IsInvalidEntry(err error) bool {
	return errors.Is(err, ErrInvalidEntry)
}

// IsIndexOutOfRange checks if an error is an index out of range error
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsCorruptStore checks if an error is a corrupt store error
func IsCorruptStore(err error) bool {
	return errors.Is(err, ErrCorruptStore)
}

// IsFetchFailed checks if an error is a metadata fetch failure
func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapFetch wraps an error as a FetchError
func WrapFetch(url string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return NewFetchError(url, statusCode, err)
}
