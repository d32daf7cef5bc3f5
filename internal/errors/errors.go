package errors

import (
	"encoding/json"
	"fmt"
)

// BusinessErr signals a violated business rule for particular target field
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// MarshalJSON serializes error with its target for api clients
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds new BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr signals that requested entry is not present in the store
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds new EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// CorruptDataErr signals that a backing data file exists but cannot be parsed.
// It is never downgraded to an empty collection.
type CorruptDataErr struct {
	path  string
	cause error
}

func (e *CorruptDataErr) Error() string {
	return fmt.Sprintf("data file %s is corrupted - %v", e.path, e.cause)
}

func (e *CorruptDataErr) Unwrap() error {
	return e.cause
}

// NewCorruptDataErr builds new CorruptDataErr
func NewCorruptDataErr(path string, cause error) *CorruptDataErr {
	return &CorruptDataErr{path: path, cause: cause}
}
