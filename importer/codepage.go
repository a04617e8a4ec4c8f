package importer

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultCodepage decodes legacy delimited exports when no codepage is
// configured. Old spreadsheet tooling on Windows overwhelmingly wrote 1252.
const DefaultCodepage = "windows-1252"

var codepages = map[string]encoding.Encoding{}

// RegisterCodepage makes a single-byte encoding available to the reader
// under the given name. The common ones are registered at init; callers
// that deal with other legacy exports register theirs before reading.
func RegisterCodepage(name string, enc encoding.Encoding) {
	codepages[strings.ToLower(name)] = enc
}

func lookupCodepage(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultCodepage
	}
	enc, ok := codepages[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unregistered codepage %q", ErrMalformedSource, name)
	}
	return enc, nil
}

func init() {
	RegisterCodepage("utf-8", encoding.Nop)
	RegisterCodepage("windows-1252", charmap.Windows1252)
	RegisterCodepage("windows-1251", charmap.Windows1251)
	RegisterCodepage("iso-8859-1", charmap.ISO8859_1)
}
