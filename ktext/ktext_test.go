package ktext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModulo_SignMatchesDivisor(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		got := Modulo(tt.a, tt.b)
		require.Equal(t, tt.want, got)
		if tt.b > 0 {
			require.True(t, got >= 0 && got < tt.b)
		} else {
			require.True(t, got <= 0 && got > tt.b)
		}
	}
}

func TestKfMin32_NaNSkipsToCurrent(t *testing.T) {
	cur := float32(3.5)
	got := KfMin32(&cur, float32(math.NaN()))
	require.Equal(t, float32(3.5), got)
}

func TestKfMin32_NoCurrentReturnsNext(t *testing.T) {
	got := KfMin32(nil, float32(9.0))
	require.Equal(t, float32(9.0), got)
}

func TestKfMax32_PicksLarger(t *testing.T) {
	cur := float32(1.0)
	got := KfMax32(&cur, float32(2.0))
	require.Equal(t, float32(2.0), got)
}

func TestKfMin64AndKfMax64_FoldOrderIndependentOfNaNPosition(t *testing.T) {
	values := []float64{5, math.NaN(), 1, math.NaN(), 9, 3}

	var min, max *float64
	for _, v := range values {
		m := KfMin64(min, v)
		min = &m
		x := KfMax64(max, v)
		max = &x
	}
	require.Equal(t, float64(1), *min)
	require.Equal(t, float64(9), *max)
}

func TestDecodeString_UTF8(t *testing.T) {
	s, err := DecodeString([]byte("héllo"), "utf-8")
	require.NoError(t, err)
	require.Equal(t, "héllo", s)
}

func TestDecodeString_UTF16LE(t *testing.T) {
	// "AB" in UTF-16LE.
	s, err := DecodeString([]byte{0x41, 0x00, 0x42, 0x00}, "utf-16le")
	require.NoError(t, err)
	require.Equal(t, "AB", s)
}

func TestDecodeString_CP437(t *testing.T) {
	// 0xE9 in CP437 maps to a non-ASCII letter (Greek capital theta);
	// just assert the label is accepted, no error occurs and the ASCII
	// byte survives.
	s, err := DecodeString([]byte{0x41, 0xE9}, "cp437")
	require.NoError(t, err)
	require.True(t, len(s) >= 1)
	require.Contains(t, s, "A")
}

func TestDecodeString_UnknownLabel(t *testing.T) {
	_, err := DecodeString([]byte("x"), "not-a-real-encoding")
	require.Error(t, err)
}

func TestReverseString_RoundTrips(t *testing.T) {
	inputs := []string{
		"hello",
		"héllo wörld",
		"é", // e + combining acute accent, must stay attached
		"",
		"\U0001F600\U0001F601", // surrogate-pair-derived emoji, pairs stay intact
	}
	for _, s := range inputs {
		require.Equal(t, s, ReverseString(ReverseString(s)))
	}
}

func TestReverseString_KeepsCombiningMarkAttached(t *testing.T) {
	// "e" + combining acute accent (U+0301) + "f" should reverse to
	// "f" + "e"+combining-acute, not "f" + combining-acute + "e".
	in := "e\u0301f"
	want := "fe\u0301"
	require.Equal(t, want, ReverseString(in))
}
