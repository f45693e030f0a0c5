package csv

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when a source does not name one.
const DefaultEncoding = "utf-8"

// textReader decodes r from the named encoding (WHATWG labels such as
// "utf-8", "latin1" or "windows-1252") into UTF-8. A UTF-8 BOM is dropped.
func textReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q: %w", ErrFileAccess, name, err)
	}

	canonical, err := htmlindex.Name(enc)
	if err == nil && canonical == DefaultEncoding {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
