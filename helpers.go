package kaitai

import "github.com/scigolib/kaitai/kbytes"

// BytesStripRight delegates to kbytes.StripRight.
func (s *BytesReader) BytesStripRight(b []byte, pad byte) []byte {
	return kbytes.StripRight(b, pad)
}

// BytesTerminate delegates to kbytes.Terminate.
func (s *BytesReader) BytesTerminate(b []byte, term byte, includeTerm bool) []byte {
	return kbytes.Terminate(b, term, includeTerm)
}

// ProcessXorOne delegates to kbytes.XorOne.
func (s *BytesReader) ProcessXorOne(b []byte, key byte) []byte {
	return kbytes.XorOne(b, key)
}

// ProcessXorMany delegates to kbytes.XorMany.
func (s *BytesReader) ProcessXorMany(b, key []byte) []byte {
	return kbytes.XorMany(b, key)
}

// ProcessRotateLeft delegates to kbytes.RotateLeft.
func (s *BytesReader) ProcessRotateLeft(b []byte, amount, groupWidth int) []byte {
	return kbytes.RotateLeft(b, amount, groupWidth)
}

// ProcessZlib delegates to kbytes.ProcessZlib.
func (s *BytesReader) ProcessZlib(b []byte) ([]byte, error) {
	return kbytes.ProcessZlib(b)
}
