package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing raw passwords and security answers from memory
// after they have been hashed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
