// Package shared holds small helpers used by more than one binary.
package shared

// WipeByteArray zeroes b in place so plaintext secrets such as a password
// read from the terminal do not linger in memory. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
