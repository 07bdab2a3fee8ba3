package ktext

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/scigolib/kaitai/kerror"
)

// DecodeString decodes b using the named encoding. Labels follow the
// WHATWG Encoding Standard (as implemented by htmlindex), e.g. "utf-8",
// "utf-16le", "windows-1251", "iso-8859-1"; "cp437" is additionally
// recognised since it is common in archive formats Kaitai targets but
// is outside the WHATWG set. Malformed byte sequences are replaced with
// the Unicode replacement character rather than rejected. An
// unrecognised label yields a *kerror.Error tagged Encoding.
func DecodeString(b []byte, label string) (string, error) {
	if strings.EqualFold(label, "cp437") {
		return decodeWith(b, charmap.CodePage437)
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", kerror.New(kerror.Encoding, fmt.Sprintf("unknown encoding label %q", label))
	}
	return decodeWith(b, enc)
}

func decodeWith(b []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", kerror.FromIOError(err)
	}
	return string(out), nil
}
