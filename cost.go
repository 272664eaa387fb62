package refpool

import units "github.com/docker/go-units"

// HumanSize formats a byte count the way Pool diagnostics (see
// [WithLogger]) render it in log lines, using human-readable binary
// (1024-based) units with no space before the suffix ("10B", "1.2GiB"),
// the kind of human-readable form the rest of the example pack's storage
// code reaches for when surfacing byte counts to operators.
func HumanSize(bytes uint64) string {
	return units.BytesSize(float64(bytes))
}

// SizeOfString is a MemoryCost helper for Objects holding a Go string:
// 16 bytes of header plus the string's byte length.
func SizeOfString(s string) uint64 {
	const headerSize = 16
	return headerSize + uint64(len(s))
}

// SizeOfSlice is a MemoryCost helper for Objects holding a slice of fixed
// per-element size elemSize: 24 bytes of header plus len(s)*elemSize.
func SizeOfSlice[E any](s []E, elemSize uint64) uint64 {
	const headerSize = 24
	return headerSize + uint64(len(s))*elemSize
}
