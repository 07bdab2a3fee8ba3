package kbytes

// StripRight returns the longest prefix of b that does not end in pad.
// It never allocates: the result aliases b.
func StripRight(b []byte, pad byte) []byte {
	n := len(b)
	for n > 0 && b[n-1] == pad {
		n--
	}
	return b[:n]
}

// Terminate returns the prefix of b up to the first occurrence of term,
// optionally including the terminator itself. If term does not occur in
// b, the whole of b is returned.
func Terminate(b []byte, term byte, includeTerm bool) []byte {
	n := 0
	for n < len(b) && b[n] != term {
		n++
	}
	if includeTerm && n < len(b) {
		n++
	}
	return b[:n]
}
