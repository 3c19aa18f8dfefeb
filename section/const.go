package section

const (
	EndiannessMask  = 0x0001 // Mask for endianness bit (bit 0)
	ReservedMask    = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicSnapshotV1Opt = 0x5A10 // MagicSnapshotV1Opt is the version 1 magic number of the snapshot format.
)

const (
	HeaderSize     = 24 // fixed header size in bytes
	IndexEntrySize = 12 // fixed index entry size in bytes
)
