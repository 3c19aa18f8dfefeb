package encoding

import (
	"fmt"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/pool"
)

// MaxNameLength is the longest set name the one-byte length prefix can hold.
const MaxNameLength = 255

// ValidateName checks that name is non-empty and fits the length prefix.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidSetName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name length %d exceeds maximum %d", errs.ErrInvalidSetName, len(name), MaxNameLength)
	}

	return nil
}

// WriteNames appends each name as a uint8 length followed by its bytes.
//
// Parameters:
//   - buf: Destination buffer
//   - names: Names to write, each 1 to MaxNameLength bytes
//
// Returns:
//   - error: errs.ErrInvalidSetName if a name is empty or too long; buf is
//     left unchanged in that case
func WriteNames(buf *pool.ByteBuffer, names []string) error {
	total := 0
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		total += 1 + len(name)
	}

	buf.Grow(total)
	for _, name := range names {
		buf.B = append(buf.B, uint8(len(name))) //nolint:gosec
		buf.B = append(buf.B, name...)
	}

	return nil
}

// ReadNames decodes count names written by WriteNames.
//
// Returns the names and the number of bytes consumed.
func ReadNames(data []byte, count int) ([]string, int, error) {
	names := make([]string, 0, count)
	offset := 0

	for i := range count {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("%w: name %d: missing length", errs.ErrCorruptPayload, i)
		}

		n := int(data[offset])
		offset++
		if n == 0 || offset+n > len(data) {
			return nil, 0, fmt.Errorf("%w: name %d: invalid length %d", errs.ErrCorruptPayload, i, n)
		}

		names = append(names, string(data[offset:offset+n]))
		offset += n
	}

	return names, offset, nil
}
