package hobeta

// Checksum computes the Hobeta header checksum over data, normally the
// first 15 bytes of a header.
//
// The accumulator folds in b*257 plus the byte's index for every byte b,
// wrapping at 16 bits on each step:
//
//	sum = uint16(sum + b*257 + i)
//
// The per-step truncation matches the arithmetic of the original
// producers; accumulating in a wider integer gives a different,
// incompatible result.
func Checksum(data []byte) uint16 {
	var sum uint16
	for i, b := range data {
		sum = sum + uint16(b)*257 + uint16(i)
	}
	return sum
}
