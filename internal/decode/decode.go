// Package decode turns raw statement bytes into text. Polish banks still
// export Windows-1250 alongside UTF-8.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Supported encoding names, matching the config values.
const (
	Auto        = "auto"
	UTF8        = "utf-8"
	Windows1250 = "windows-1250"
)

// ErrInvalidUTF8 is returned when utf-8 is requested for bytes that are not.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Bytes decodes data using the named encoding. "auto" picks UTF-8 when data
// is valid UTF-8 and Windows-1250 otherwise. A UTF-8 byte order mark is dropped.
func Bytes(data []byte, encoding string) (string, error) {
	switch encoding {
	case Auto, "":
		if utf8.Valid(data) {
			return string(bytes.TrimPrefix(data, utf8BOM)), nil
		}
		return fromWindows1250(data)
	case UTF8:
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	case Windows1250:
		return fromWindows1250(data)
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Detect names the encoding "auto" would pick for data.
func Detect(data []byte) string {
	if utf8.Valid(data) {
		return UTF8
	}
	return Windows1250
}

func fromWindows1250(data []byte) (string, error) {
	out, err := charmap.Windows1250.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding windows-1250: %w", err)
	}
	return string(out), nil
}
