package kbytes

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/scigolib/kaitai/kerror"
)

// ProcessZlib inflates an RFC 1950/1951 zlib stream to its end. Unlike
// the reference implementation this runtime is grounded on, a decoder
// error is surfaced as an *kerror.Error tagged IoError rather than
// silently discarded: a truncated or corrupt stream must never look
// like a successful, merely-short, decompression.
func ProcessZlib(b []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, kerror.FromIOError(err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, kerror.FromIOError(err)
	}
	return out, nil
}
