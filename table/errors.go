package table

import "errors"

// Common errors returned by table operations.
var (
	// ErrColumnNotFound indicates that a required column is absent.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnExists indicates that a column name collides with an
	// existing column.
	ErrColumnExists = errors.New("column already exists")

	// ErrDuplicateColumn indicates that a table was constructed with two
	// columns sharing the same name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrLengthMismatch indicates that columns, rows, or masks disagree
	// on length.
	ErrLengthMismatch = errors.New("length mismatch")
)
