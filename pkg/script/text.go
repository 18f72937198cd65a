package script

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Language 0 is Japanese; every other language uses Latin-1. Wide-text
// versions store UTF-16LE regardless of language.
func narrowEncoding(language uint8) encoding.Encoding {
	if language == 0 {
		return japanese.ShiftJIS
	}
	return charmap.ISO8859_1
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeNarrow converts a NUL-terminated single-byte-encoded field to
// UTF-8. Undecodable input is returned as a data string so the caller
// still gets something round-trippable.
func decodeNarrow(data []byte, language uint8) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	s, err := narrowEncoding(language).NewDecoder().Bytes(data)
	if err != nil {
		return formatDataString(data)
	}
	return string(s)
}

// encodeNarrow writes s into a fixed-size NUL-padded field.
func encodeNarrow(s string, language uint8, size int) ([]byte, error) {
	raw, err := narrowEncoding(language).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode %q for language %d", ErrInvalidArgument, s, language)
	}
	if len(raw) >= size {
		raw = raw[:size-1]
	}
	out := make([]byte, size)
	copy(out, raw)
	return out, nil
}

// decodeWide converts a NUL-terminated UTF-16LE field to UTF-8.
func decodeWide(data []byte) string {
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			data = data[:i]
			break
		}
	}
	s, err := utf16LE.NewDecoder().Bytes(data)
	if err != nil {
		return formatDataString(data)
	}
	return string(s)
}

// encodeWide writes s into a fixed-size NUL-padded UTF-16LE field.
// size is in bytes and must be even.
func encodeWide(s string, size int) ([]byte, error) {
	raw, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode %q as UTF-16", ErrInvalidArgument, s)
	}
	if len(raw) >= size {
		raw = raw[:size-2]
	}
	out := make([]byte, size)
	copy(out, raw)
	return out, nil
}

// ---- quoted strings ----

// escapeString renders a decoded string as a double-quoted literal
// with the escapes the assembler understands.
func escapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range []byte(s) {
		switch {
		case ch == '\n':
			b.WriteString(`\n`)
		case ch == '\r':
			b.WriteString(`\r`)
		case ch == '\t':
			b.WriteString(`\t`)
		case ch < 0x20:
			fmt.Fprintf(&b, `\x%02X`, ch)
		case ch == '\'':
			b.WriteString(`\'`)
		case ch == '"':
			b.WriteString(`\"`)
		case ch == '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func hexDigit(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

// ---- data strings ----

// A data string is hex digits with optional embedded double-quoted
// ASCII runs: 0304"abc"05. Whitespace between tokens is ignored. This
// is the format .data lines and string directives use.

// parseDataString decodes a data string into raw bytes.
func parseDataString(s string) ([]byte, error) {
	var out []byte
	var high byte
	haveHigh := false
	inQuote := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inQuote {
			switch ch {
			case '"':
				inQuote = false
			case '\\':
				i++
				if i >= len(s) {
					return nil, fmt.Errorf("%w: dangling escape in data string", ErrInvalidArgument)
				}
				switch s[i] {
				case 'n':
					out = append(out, '\n')
				case 'r':
					out = append(out, '\r')
				case 't':
					out = append(out, '\t')
				case 'x':
					if i+2 >= len(s) {
						return nil, fmt.Errorf("%w: truncated \\x escape in data string", ErrInvalidArgument)
					}
					hi, ok1 := hexDigit(s[i+1])
					lo, ok2 := hexDigit(s[i+2])
					if !ok1 || !ok2 {
						return nil, fmt.Errorf("%w: invalid \\x escape in data string", ErrInvalidArgument)
					}
					out = append(out, hi<<4|lo)
					i += 2
				default:
					out = append(out, s[i])
				}
			default:
				out = append(out, ch)
			}
			continue
		}
		switch {
		case ch == '"':
			if haveHigh {
				return nil, fmt.Errorf("%w: odd hex digit count in data string", ErrInvalidArgument)
			}
			inQuote = true
		case ch == ' ' || ch == '\t':
			// ignored between tokens
		default:
			v, ok := hexDigit(ch)
			if !ok {
				return nil, fmt.Errorf("%w: invalid character %q in data string", ErrInvalidArgument, ch)
			}
			if haveHigh {
				out = append(out, high<<4|v)
				haveHigh = false
			} else {
				high = v
				haveHigh = true
			}
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated quote in data string", ErrInvalidArgument)
	}
	if haveHigh {
		return nil, fmt.Errorf("%w: odd hex digit count in data string", ErrInvalidArgument)
	}
	return out, nil
}

// formatDataString encodes raw bytes as a data string, quoting
// printable ASCII runs for readability.
func formatDataString(data []byte) string {
	var b strings.Builder
	inQuote := false
	for _, ch := range data {
		printable := ch >= 0x20 && ch < 0x7F && ch != '"' && ch != '\\'
		if printable != inQuote {
			b.WriteByte('"')
			inQuote = printable
		}
		if printable {
			b.WriteByte(ch)
		} else {
			fmt.Fprintf(&b, "%02X", ch)
		}
	}
	if inQuote {
		b.WriteByte('"')
	}
	return b.String()
}

// hexDumpLines renders data as an indented hex dump with an ASCII
// column, 16 bytes per row, addressed from startAddr. Display only;
// reassembly mode uses .data lines instead.
func hexDumpLines(data []byte, startAddr int) []string {
	var out []string
	for row := 0; row < len(data); row += 16 {
		end := row + 16
		if end > len(data) {
			end = len(data)
		}
		var hex, ascii strings.Builder
		for i := row; i < end; i++ {
			fmt.Fprintf(&hex, "%02X ", data[i])
			if data[i] >= 0x20 && data[i] < 0x7F {
				ascii.WriteByte(data[i])
			} else {
				ascii.WriteByte('.')
			}
		}
		out = append(out, fmt.Sprintf("  %04X  %-48s | %s", startAddr+row, hex.String(), ascii.String()))
	}
	return out
}
