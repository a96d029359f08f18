package assert

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// XMLEqual compares two XML documents, ignoring indentation and comments.
func XMLEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(xmlFormat(t, expected), xmlFormat(t, actual)); diff != "" {
		t.Errorf("XML mismatch (-want +got):\n%s", diff)
	}
}

func xmlFormat(t *testing.T, input string) string {
	t.Helper()
	var builder strings.Builder

	decoder := xml.NewDecoder(bytes.NewReader([]byte(input)))
	encoder := xml.NewEncoder(&builder)
	encoder.Indent("", "  ")

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML %q: %v", input, err)
		}

		switch x := tok.(type) {
		case xml.CharData:
			x = bytes.TrimSpace(x)
			if len(x) == 0 {
				continue
			}
			tok = x
		case xml.Comment, xml.ProcInst:
			continue
		}

		if err := encoder.EncodeToken(tok); err != nil {
			t.Fatalf("re-encoding XML: %v", err)
		}
	}
	if err := encoder.Flush(); err != nil {
		t.Fatalf("re-encoding XML: %v", err)
	}
	return builder.String()
}
