package script

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseDataString(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"", nil},
		{"00", []byte{0x00}},
		{"DEADBEEF", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"de ad be ef", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{`"AB"`, []byte("AB")},
		{`41"B"43`, []byte("ABC")},
		{`"a\nb"`, []byte("a\nb")},
		{`"a\tb\rc"`, []byte("a\tb\rc")},
		{`"\x7F"`, []byte{0x7F}},
		{`"say \"hi\""`, []byte(`say "hi"`)},
		{`"back\\slash"`, []byte(`back\slash`)},
		{`00"A"00`, []byte{0x00, 'A', 0x00}},
	}
	for _, tt := range tests {
		got, err := parseDataString(tt.in)
		if err != nil {
			t.Errorf("parseDataString(%q) failed: %v", tt.in, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("parseDataString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDataStringErrors(t *testing.T) {
	for _, in := range []string{"0", "ABC", "0x", `"abc`, `"a\`, `zz`, `"\xG0"`} {
		if _, err := parseDataString(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("parseDataString(%q): expected ErrInvalidArgument, got %v", in, err)
		}
	}
}

func TestFormatDataStringRoundTrip(t *testing.T) {
	tests := [][]byte{
		{0x00, 0x01, 0xFF},
		[]byte("hello"),
		{0x00, 'h', 'i', 0x00, 0xC3},
		nil,
	}
	for _, data := range tests {
		formatted := formatDataString(data)
		parsed, err := parseDataString(formatted)
		if err != nil {
			t.Errorf("parse of %q failed: %v", formatted, err)
			continue
		}
		if !bytes.Equal(parsed, data) {
			t.Errorf("round trip of %v via %q = %v", data, formatted, parsed)
		}
	}
}

func TestEscapeStringParse(t *testing.T) {
	tests := []string{
		"plain",
		"line1\nline2",
		"tab\there",
		`quotes "inside"`,
		`back\slash`,
	}
	for _, s := range tests {
		escaped := escapeString(s)
		parsed, err := parseDataString(escaped)
		if err != nil {
			t.Errorf("parse of %q failed: %v", escaped, err)
			continue
		}
		if string(parsed) != s {
			t.Errorf("round trip of %q via %q = %q", s, escaped, parsed)
		}
	}
}

func TestNarrowEncodeDecode(t *testing.T) {
	// Language 1 is English (ISO 8859-1); the name field is fixed-size
	// and NUL padded.
	enc, err := encodeNarrow("quest", 1, 0x20)
	if err != nil {
		t.Fatalf("encodeNarrow failed: %v", err)
	}
	if len(enc) != 0x20 {
		t.Fatalf("encoded length = %d, want 0x20", len(enc))
	}
	if got := decodeNarrow(enc, 1); got != "quest" {
		t.Errorf("decodeNarrow = %q, want quest", got)
	}
}

func TestWideEncodeDecode(t *testing.T) {
	enc, err := encodeWide("quest", 0x40)
	if err != nil {
		t.Fatalf("encodeWide failed: %v", err)
	}
	if len(enc) != 0x40 {
		t.Fatalf("encoded length = %d, want 0x40", len(enc))
	}
	if got := decodeWide(enc); got != "quest" {
		t.Errorf("decodeWide = %q, want quest", got)
	}
}
