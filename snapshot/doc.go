// Package snapshot encodes named float sample sets into a single compact,
// checksummed blob and decodes them back.
//
// A snapshot is a section.Header followed by one payload compressed as a
// whole. The uncompressed payload holds, in order, an index entry per set
// (name ID and sample count), the length-prefixed set names, and the X and Y
// columns of each set as float64 values in the header's byte order.
//
// Encoding:
//
//	enc, err := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	if err := enc.Add("gamma", gamma); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
// Decoding:
//
//	snap, err := snapshot.Decode(data)
//	if err != nil {
//	    return err
//	}
//	gamma, ok := snap.Get("gamma")
//
// Decoded sets are rebuilt sample by sample, so a payload whose X column is
// not strictly increasing is rejected.
package snapshot
