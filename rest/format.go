package rest

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"

	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
)

type Format string

const (
	FormatJSON Format = "application/fhir+json"
	FormatXML  Format = "application/fhir+xml"
)

var (
	alternateFormatsJSON = []string{"application/json", "text/json", "json"}
	alternateFormatsXML  = []string{"application/xml", "text/xml", "xml"}
)

// maxBodySize limits request and response bodies read into memory.
const maxBodySize = 16 << 20

func matchFormat(contentType string) Format {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	switch {
	case contentType == string(FormatJSON) || slices.Contains(alternateFormatsJSON, contentType):
		return FormatJSON
	case contentType == string(FormatXML) || slices.Contains(alternateFormatsXML, contentType):
		return FormatXML
	}
	return ""
}

// detectFormat picks the format from the _format parameter, then from the given header.
func detectFormat(r *http.Request, headerName string, fallback Format) Format {
	// url parameter overrides the header
	if formatQuery := r.URL.Query()["_format"]; len(formatQuery) > 0 {
		if format := matchFormat(formatQuery[0]); format != "" {
			return format
		}
	}
	for _, value := range r.Header[headerName] {
		if format := matchFormat(value); format != "" {
			return format
		}
	}
	return cmp.Or(fallback, FormatJSON)
}

func decodeResource(r io.Reader, format Format) (model.Resource, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	switch format {
	case FormatJSON:
		return r5.ParseJSONResource(body)
	case FormatXML:
		return r5.ParseXMLResource(body)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func encode(w io.Writer, v model.Resource, format Format) error {
	switch format {
	case FormatJSON:
		return fhirjson.NewEncoder(w).Encode(v)
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return fmt.Errorf("encode xml: %w", err)
		}
		return fhirxml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
