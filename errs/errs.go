// Package errs defines the sentinel errors shared by the sampleset packages.
//
// Callers branch on these values with errors.Is. Contract violations in the
// sample package (uninitialized set, lookup on an empty set, an unordered
// parameter such as NaN) are raised as panics whose value wraps one of these
// sentinels, so a recovered panic can still be classified with errors.Is.
package errs

import "errors"

// Sample set errors.
var (
	// ErrUninitialized is raised when a Set is used before New, NewWithDomain or Init.
	ErrUninitialized = errors.New("sample set is not initialized")
	// ErrEmptySet is raised when a lookup is made on a set without samples.
	ErrEmptySet = errors.New("sample set is empty")
	// ErrInvalidIndex is returned when a direct-index operation is out of range.
	ErrInvalidIndex = errors.New("sample index out of range")
	// ErrOrderingViolation is returned when a mutation would break the strictly increasing X order.
	ErrOrderingViolation = errors.New("sample parameter breaks ordering")
	// ErrInvalidParam is raised when the domain cannot order a parameter (e.g. NaN).
	ErrInvalidParam = errors.New("sample parameter is not ordered")
	// ErrInvalidOption is returned when a constructor option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option")
)

// Snapshot errors.
var (
	ErrNoSets             = errors.New("no sample sets added")
	ErrInvalidSetName     = errors.New("invalid sample set name")
	ErrDuplicateSet       = errors.New("sample set already added")
	ErrHashCollision      = errors.New("sample set name hash collision")
	ErrInvalidHeaderSize  = errors.New("invalid snapshot header size")
	ErrInvalidMagic       = errors.New("invalid snapshot magic number")
	ErrInvalidCompression = errors.New("invalid snapshot compression type")
	ErrChecksumMismatch   = errors.New("snapshot payload checksum mismatch")
	ErrCorruptPayload     = errors.New("corrupt snapshot payload")
	ErrTooManySamples     = errors.New("too many samples in set")
)

// Store errors.
var (
	ErrSetNotFound = errors.New("sample set not found")
)
