package protocol

// Checksum computes the DDC/CI checksum of a message: the XOR of every byte,
// source and destination addresses included.
//
// Per VESA DDC/CI 1.1 section 1.6, appending the result to the message makes
// the XOR of the whole message zero.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// ChecksumWithDestination computes the checksum as if the message had been
// addressed to dest instead of its first byte.
//
// Replies from the display are checksummed against the 0x50 virtual host
// address rather than the 0x6F destination they arrive with.
func ChecksumWithDestination(data []byte, dest byte) byte {
	if len(data) == 0 {
		return dest
	}
	return Checksum(data) ^ data[0] ^ dest
}
