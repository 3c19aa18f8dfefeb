// Package sample implements an ordered sample set: a sequence of (X, Y) pairs
// kept strictly increasing in X, with an adaptive binary/linear search that
// resolves any query parameter to its enclosing pair of samples.
//
// The set stores the samples and resolves positions; it never interpolates Y.
// Callers such as animation curves or arc-length tables use the returned bin
// and fraction to blend values themselves (see the curve package).
//
// # Bins
//
// A set with n samples has n-1 bins. Bin i spans [X[i], X[i+1]). A query is
// resolved to a bin and a fraction in [0, 1] within it:
//
//	set, _ := sample.New[float64, string]()
//	set.Add(0, "a", sample.NoHint)
//	set.Add(10, "b", sample.NoHint)
//	set.Add(20, "c", sample.NoHint)
//
//	r := set.Lookup(15, sample.NoHint)
//	// r.Bin == 1, r.X1 == 10, r.X2 == 20, r.Frac == 0.5
//
// Queries outside [X[0], X[n-1]] are clamped to the first or last bin and
// flagged with OutOfBounds. A set holding a single sample reports that sample
// as both ends of bin 0 with a fraction of 0.
//
// # Search hints
//
// Every lookup takes a hint: the bin returned by a previous query. When
// consecutive queries land in the same bin, a hinted search resolves in a
// single comparison step. The hint never changes the result, only the cost.
// Pass NoHint when no previous bin is known, or use a Cursor, which feeds the
// last resolved bin back automatically.
//
// # Parameters
//
// The X type is ordered by a Domain. New uses the Numeric domain for any
// integer or floating-point type; NewWithDomain accepts other domains such as
// Time or a FuncDomain built from plain functions.
//
// # Errors and panics
//
// Using a zero Set, looking up on an empty set, or passing a parameter the
// domain cannot order (NaN) are caller bugs and panic with a value wrapping
// errs.ErrUninitialized, errs.ErrEmptySet or errs.ErrInvalidParam.
// Direct-index mutations (Update, SetEntry, Append) report errs.ErrInvalidIndex
// and errs.ErrOrderingViolation as returned errors so hot loops can branch on
// them cheaply.
//
// # Thread Safety
//
// A Set is not safe for concurrent mutation. Lookups may run concurrently with
// each other but never with Add, Append, Update, SetEntry or Reset.
package sample
