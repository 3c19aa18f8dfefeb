// Package store keeps named float curves as YAML documents in a directory.
//
// Each set lives in <root>/<name>.yaml:
//
//	name: gamma
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 0.5, y: 0.218}
//	  - {x: "1", y: 1}
//
// Point values are parsed leniently, so integers, floats and numeric strings
// are all accepted. Points may appear in any order; a later point with the
// same x replaces an earlier one.
//
// Parsed sets are kept in a TTL cache. Load always returns a private copy, so
// callers may modify the result without affecting the cache or other callers.
// A FileStore is safe for concurrent use, but concurrent writers of the same
// name race at the file level and the last rename wins.
package store
