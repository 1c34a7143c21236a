package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownDepartment indicates a department outside the closed set.
	// Content tables must cover every department, so this is a defect.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrUnknownCollection indicates a collection name that is not recognised.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownPeriod indicates a trade memory period other than short, mid or long.
	ErrUnknownPeriod = errors.New("unknown memory period")

	// Key Errors.

	// ErrSeparatorInSegment indicates a non-final path segment contains the
	// reserved key separator.
	ErrSeparatorInSegment = errors.New("key separator in path segment")

	// ErrEmptySegment indicates a path segment rendered to the empty string.
	ErrEmptySegment = errors.New("empty path segment")

	// ErrPathArity indicates a path whose length does not match its collection.
	ErrPathArity = errors.New("path arity mismatch")

	// ErrUnsupportedSegment indicates a path segment of an unsupported type.
	ErrUnsupportedSegment = errors.New("unsupported path segment")

	// ErrInvalidSettings indicates the seed configuration cannot be used.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrStoreClosed indicates the store registry has been closed.
	ErrStoreClosed = errors.New("store closed")
)
