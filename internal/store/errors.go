package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValue.Get] when no value is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoCurrentUser is returned when the current-session slot is empty,
	// i.e. no identity is signed in.
	ErrNoCurrentUser = errors.New("no current user")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite-backed key-value adapter when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrDecodingValue is returned when a stored JSON value cannot be
	// decoded into its target type, indicating a corrupted record.
	ErrDecodingValue = errors.New("failed to decode stored value")

	// ErrEncodingValue is returned when a value cannot be serialised to
	// JSON before storage.
	ErrEncodingValue = errors.New("failed to encode value for storage")
)
