package source

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

// Supported encodings.
const (
	EncodingUTF8     = "utf8"
	EncodingCP437    = "cp437"
	EncodingCP850    = "cp850"
	EncodingISO88591 = "iso-8859-1"
)

// Encodings lists the accepted values of Options.Encoding.
var Encodings = []string{EncodingUTF8, EncodingCP437, EncodingCP850, EncodingISO88591}

// decode converts r to UTF-8. A leading UTF-8 byte order mark is dropped.
func decode(r io.Reader, name string) (io.Reader, error) {
	var decoder *encoding.Decoder

	switch name {
	case "", EncodingUTF8:
		decoder = unicode.UTF8BOM.NewDecoder()
	case EncodingCP437:
		decoder = charmap.CodePage437.NewDecoder()
	case EncodingCP850:
		decoder = charmap.CodePage850.NewDecoder()
	case EncodingISO88591:
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, wmerrors.NewValidationError(wmerrors.ErrCodeUnsupportedEncoding,
			"unsupported encoding: "+name)
	}

	return transform.NewReader(r, decoder), nil
}
