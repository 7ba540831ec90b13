package store

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Document is a schema-flexible record in a collection. Attributes hold only
// scalar and array values; nested objects are not representable, which is why
// structured fields are flattened before they reach the store.
type Document struct {
	ID         string         `json:"id"`
	Collection string         `json:"collection"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Data       map[string]any `json:"data"`
}

// Op is a filter operator.
type Op string

const (
	// OpEqual matches documents whose attribute equals the value exactly.
	OpEqual Op = "equal"
	// OpContains matches documents whose attribute contains the value as a
	// substring.
	OpContains Op = "contains"
)

// Filter restricts a list to documents matching a single attribute predicate.
// FoldCase makes the comparison case-insensitive.
type Filter struct {
	Attribute string
	Op        Op
	Value     string
	FoldCase  bool
}

// CreatedAtField addresses the system creation timestamp in sort options.
const CreatedAtField = "$createdAt"

// Sort orders a list by an attribute or by CreatedAtField.
type Sort struct {
	Attribute  string
	Descending bool
}

// ListOptions carries filters, ordering and paging for ListDocuments.
type ListOptions struct {
	Filters []Filter
	Sort    []Sort
	Limit   int
	Offset  int
}

// Client is the document-store boundary. All persistence in this codebase goes
// through it; the production implementation lives in gorm.go and tests
// substitute Memory.
type Client interface {
	CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	// UpdateDocument merges data into the existing document and returns the
	// merged result.
	UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	DeleteDocument(ctx context.Context, collection, id string) error
	ListDocuments(ctx context.Context, collection string, opts ListOptions) ([]*Document, error)
}

// Error is a coded store failure. Code follows HTTP status conventions so
// callers can branch on not-found/unauthorized/forbidden without knowing the
// backing implementation.
type Error struct {
	Code    int
	Type    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a 404 store error.
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Type: "document_not_found", Message: message}
}

// Forbidden builds a 403 store error.
func Forbidden(message string) *Error {
	return &Error{Code: http.StatusForbidden, Type: "permission_denied", Message: message}
}

// Unauthorized builds a 401 store error.
func Unauthorized(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Type: "unauthorized", Message: message}
}

func codeIs(err error, code int) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// IsNotFound reports whether err is a 404 store error.
func IsNotFound(err error) bool { return codeIs(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 store error.
func IsUnauthorized(err error) bool { return codeIs(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 store error.
func IsForbidden(err error) bool { return codeIs(err, http.StatusForbidden) }
