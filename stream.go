// Package kaitai is the runtime support library for parsers generated
// from Kaitai Struct format definitions. It supplies the byte stream,
// error taxonomy and parse-tree scaffolding those generated parsers are
// compiled against; it never contains knowledge of any specific binary
// format.
package kaitai

// Stream is the read surface every generated parser drives: position
// and size queries, seeking, aligned typed reads, sub-byte bit reads,
// and bounded/terminated byte reads. Every operation that can fail
// returns an *kerror.Error; reads take a value receiver conceptually
// (no method here requires Stream itself to be addressable) but mutate
// shared internal state, so implementations must make that mutation
// safe for a single logical thread of control holding many references
// to the same stream during one recursive parse.
type Stream interface {
	// IsEOF reports whether the stream is positioned at its end with no
	// unread bits left in the bit accumulator.
	IsEOF() (bool, error)

	// Seek moves the stream's byte position to p.
	Seek(p int64) error

	// Pos returns the current byte offset.
	Pos() (int64, error)

	// Size returns the total byte length of the stream's content.
	Size() (int64, error)

	ReadS1() (int8, error)
	ReadS2be() (int16, error)
	ReadS4be() (int32, error)
	ReadS8be() (int64, error)
	ReadS2le() (int16, error)
	ReadS4le() (int32, error)
	ReadS8le() (int64, error)

	ReadU1() (uint8, error)
	ReadU2be() (uint16, error)
	ReadU4be() (uint32, error)
	ReadU8be() (uint64, error)
	ReadU2le() (uint16, error)
	ReadU4le() (uint32, error)
	ReadU8le() (uint64, error)

	ReadF4be() (float32, error)
	ReadF8be() (float64, error)
	ReadF4le() (float32, error)
	ReadF8le() (float64, error)

	// AlignToByte discards any unread bits from the bit accumulator
	// without moving the byte position.
	AlignToByte() error

	// ReadBitsIntBe reads n (0..64) bits, most-significant bit first
	// across byte boundaries, returning them right-aligned in a uint64.
	ReadBitsIntBe(n int) (uint64, error)

	// ReadBitsIntLe reads n (0..64) bits, least-significant bit first
	// across byte boundaries, returning them right-aligned in a uint64.
	ReadBitsIntLe(n int) (uint64, error)

	// ReadBytes advances the stream by n bytes, returning the consumed
	// slice.
	ReadBytes(n int) ([]byte, error)

	// ReadBytesFull returns every byte from the current position to the
	// end of the stream, advancing the position to Size().
	ReadBytesFull() ([]byte, error)

	// ReadBytesTerm scans forward for the first occurrence of term. If it
	// is found, the result runs from the current position up to term
	// (including term when include is set), and the position moves to
	// term (past it when consume is set). If it is not found, an
	// EncounteredEOF error is returned when eosError is set; otherwise
	// the rest of the stream is returned and the position is unchanged.
	ReadBytesTerm(term byte, include, consume, eosError bool) ([]byte, error)

	// EnsureFixedContents reads len(expected) bytes and verifies they
	// equal expected exactly.
	EnsureFixedContents(expected []byte) ([]byte, error)

	// BytesStripRight, BytesTerminate, ProcessXorOne, ProcessXorMany,
	// ProcessRotateLeft and ProcessZlib are the pure byte-processing
	// helpers generated code reaches through the stream value it
	// already holds, rather than importing kbytes directly. They carry
	// no stream state; every implementation delegates to kbytes.
	BytesStripRight(b []byte, pad byte) []byte
	BytesTerminate(b []byte, term byte, includeTerm bool) []byte
	ProcessXorOne(b []byte, key byte) []byte
	ProcessXorMany(b, key []byte) []byte
	ProcessRotateLeft(b []byte, amount, groupWidth int) []byte
	ProcessZlib(b []byte) ([]byte, error)
}
