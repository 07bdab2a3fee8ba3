package kaitai

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/scigolib/kaitai/kerror"
)

// BytesReader is the runtime's sole concrete Stream implementation: a
// cursor over a borrowed, immutable byte slice. It owns the bit
// accumulator and advances pos/bits/bitsLeft under a mutex so that the
// many parse-tree nodes that alias one BytesReader during a recursive
// parse can each hold a plain Stream reference without racing.
type BytesReader struct {
	content []byte

	mu       sync.Mutex
	pos      int64
	bits     uint64
	bitsLeft int
}

var _ Stream = (*BytesReader)(nil)

// NewBytesReader wraps b, which must outlive the returned reader, in an
// in-memory Stream positioned at offset zero.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{content: b}
}

func (s *BytesReader) IsEOF() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.pos) == len(s.content) && s.bitsLeft == 0, nil
}

func (s *BytesReader) Seek(p int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p < 0 || p > int64(len(s.content)) {
		deficit := p - int64(len(s.content))
		if deficit < 0 {
			deficit = 0
		}
		return kerror.NewIncomplete(deficit)
	}
	s.pos = p
	return nil
}

func (s *BytesReader) Pos() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos, nil
}

func (s *BytesReader) Size() (int64, error) {
	return int64(len(s.content)), nil
}

// readRaw advances pos by n bytes, under the caller's held lock,
// returning a borrow of the consumed slice.
func (s *BytesReader) readRaw(n int) ([]byte, error) {
	if n < 0 {
		panic("kaitai: negative read length")
	}
	avail := int64(len(s.content)) - s.pos
	if int64(n) > avail {
		return nil, kerror.NewIncomplete(int64(n) - avail)
	}
	b := s.content[s.pos : s.pos+int64(n)]
	s.pos += int64(n)
	return b, nil
}

func (s *BytesReader) ReadBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRaw(n)
}

func (s *BytesReader) ReadBytesFull() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRaw(len(s.content) - int(s.pos))
}

func (s *BytesReader) ReadBytesTerm(term byte, include, consume, eosError bool) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.pos
	idx := int64(-1)
	for i := start; i < int64(len(s.content)); i++ {
		if s.content[i] == term {
			idx = i
			break
		}
	}

	if idx < 0 {
		if eosError {
			return nil, kerror.New(kerror.EncounteredEOF, "read_bytes_term: terminator not found before end of stream")
		}
		rest := s.content[start:]
		return rest, nil
	}

	end := idx
	if include {
		end = idx + 1
	}
	result := s.content[start:end]

	newPos := idx
	if consume {
		newPos = idx + 1
	}
	s.pos = newPos
	return result, nil
}

func (s *BytesReader) EnsureFixedContents(expected []byte) ([]byte, error) {
	actual, err := s.ReadBytes(len(expected))
	if err != nil {
		return nil, err
	}
	for i := range expected {
		if actual[i] != expected[i] {
			cp := make([]byte, len(actual))
			copy(cp, actual)
			return nil, kerror.NewUnexpectedContents(cp)
		}
	}
	return actual, nil
}

func (s *BytesReader) ReadS1() (int8, error) {
	b, err := s.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (s *BytesReader) ReadU1() (uint8, error) {
	b, err := s.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *BytesReader) ReadU2be() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (s *BytesReader) ReadU2le() (uint16, error) {
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *BytesReader) ReadS2be() (int16, error) {
	v, err := s.ReadU2be()
	return int16(v), err
}

func (s *BytesReader) ReadS2le() (int16, error) {
	v, err := s.ReadU2le()
	return int16(v), err
}

func (s *BytesReader) ReadU4be() (uint32, error) {
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (s *BytesReader) ReadU4le() (uint32, error) {
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *BytesReader) ReadS4be() (int32, error) {
	v, err := s.ReadU4be()
	return int32(v), err
}

func (s *BytesReader) ReadS4le() (int32, error) {
	v, err := s.ReadU4le()
	return int32(v), err
}

func (s *BytesReader) ReadU8be() (uint64, error) {
	b, err := s.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (s *BytesReader) ReadU8le() (uint64, error) {
	b, err := s.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (s *BytesReader) ReadS8be() (int64, error) {
	v, err := s.ReadU8be()
	return int64(v), err
}

func (s *BytesReader) ReadS8le() (int64, error) {
	v, err := s.ReadU8le()
	return int64(v), err
}

func (s *BytesReader) ReadF4be() (float32, error) {
	v, err := s.ReadU4be()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (s *BytesReader) ReadF4le() (float32, error) {
	v, err := s.ReadU4le()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (s *BytesReader) ReadF8be() (float64, error) {
	v, err := s.ReadU8be()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (s *BytesReader) ReadF8le() (float64, error) {
	v, err := s.ReadU8le()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (s *BytesReader) AlignToByte() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bits = 0
	s.bitsLeft = 0
	return nil
}

// ReadBitsIntBe reads n (0..64) bits, most-significant-bit first across
// byte boundaries. Newly fetched bytes are shifted in at the low end of
// the accumulator; the unread low-order bits are kept for the next call.
// This is the big-endian half of spec.md §4.D.
func (s *BytesReader) ReadBitsIntBe(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 || n > 64 {
		return 0, kerror.NewReadBitsTooLarge(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bitsNeeded := n - s.bitsLeft
	s.bitsLeft = mod8(-bitsNeeded)

	var res uint64
	if bitsNeeded > 0 {
		bytesNeeded := (bitsNeeded-1)/8 + 1
		buf, err := s.readRaw(bytesNeeded)
		if err != nil {
			return 0, err
		}
		var newBits uint64
		for _, b := range buf {
			newBits = newBits<<8 | uint64(b)
		}
		res = (s.bits << uint(bitsNeeded)) | (newBits >> uint(s.bitsLeft))
		s.bits = newBits
	} else {
		res = s.bits >> uint(-bitsNeeded)
	}

	if s.bitsLeft > 0 {
		s.bits &= (uint64(1) << uint(s.bitsLeft)) - 1
	} else {
		s.bits = 0
	}

	if n < 64 {
		res &= (uint64(1) << uint(n)) - 1
	}
	return res, nil
}

// ReadBitsIntLe reads n (0..64) bits, least-significant-bit first
// across byte boundaries: the little-endian half of spec.md §4.D.
func (s *BytesReader) ReadBitsIntLe(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 || n > 64 {
		return 0, kerror.NewReadBitsTooLarge(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bitsNeeded := n - s.bitsLeft

	var res uint64
	if bitsNeeded > 0 {
		bytesNeeded := (bitsNeeded-1)/8 + 1
		buf, err := s.readRaw(bytesNeeded)
		if err != nil {
			return 0, err
		}
		var newBits uint64
		for i, b := range buf {
			newBits |= uint64(b) << uint(8*i)
		}
		res = s.bits | (newBits << uint(s.bitsLeft))
		s.bits = newBits >> uint(bitsNeeded)
		s.bitsLeft = bytesNeeded*8 - bitsNeeded
	} else {
		res = s.bits
		s.bits >>= uint(n)
		s.bitsLeft -= n
	}

	if n < 64 {
		res &= (uint64(1) << uint(n)) - 1
	}
	return res, nil
}

func mod8(x int) int {
	m := x % 8
	if m < 0 {
		m += 8
	}
	return m
}
