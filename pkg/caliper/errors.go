// Package caliper provides custom error types for shape and document
// operations.
package caliper

import (
	"fmt"
	"strings"
)

// IndexError reports a collection access outside the valid index range.
// Part names the document part the collection belongs to and serves error
// attribution only.
type IndexError struct {
	What  string
	Index int
	Part  string
}

func (e *IndexError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("%s index [%d] out of range in %s", e.What, e.Index, e.Part)
	}
	return fmt.Sprintf("%s index [%d] out of range", e.What, e.Index)
}

// NewIndexError creates a new index error for the named collection.
func NewIndexError(what string, index int, part string) error {
	return &IndexError{
		What:  what,
		Index: index,
		Part:  part,
	}
}

// MalformedDrawingError reports an inline drawing whose markup lacks a
// sub-tree that the attempted operation requires. The operation fails as a
// whole; no partial write is left behind.
type MalformedDrawingError struct {
	Op     string
	Detail string
}

func (e *MalformedDrawingError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed inline drawing: %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("malformed inline drawing during %s", e.Op)
}

// NewMalformedDrawingError creates a new malformed drawing error.
func NewMalformedDrawingError(op, detail string) error {
	return &MalformedDrawingError{
		Op:     op,
		Detail: detail,
	}
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ValidationIssue represents a single consistency problem found in a shape
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// IsIndexError checks if an error is an index error
func IsIndexError(err error) bool {
	_, ok := err.(*IndexError)
	return ok
}

// IsMalformedDrawingError checks if an error is a malformed drawing error
func IsMalformedDrawingError(err error) bool {
	_, ok := err.(*MalformedDrawingError)
	return ok
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}
