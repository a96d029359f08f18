package xml

import (
	"encoding/xml"
	"strings"
)

const namespaceXML = "http://www.w3.org/XML/1998/namespace"

// xhtml is a narrative div with its content kept verbatim.
type xhtml struct {
	XMLName xml.Name
	Attr    []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

func parseXHTML(div string) (xhtml, error) {
	var x xhtml
	err := xml.Unmarshal([]byte(div), &x)
	return x, err
}

func isNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// attrs returns the attributes of the div, without namespace declarations.
func (x xhtml) attrs() []xml.Attr {
	var attrs []xml.Attr
	for _, a := range x.Attr {
		if !isNamespaceDecl(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// String renders the div, declaring the XHTML namespace on it.
func (x xhtml) String() string {
	var b strings.Builder
	b.WriteString(`<div xmlns="` + NamespaceXHTML + `"`)
	for _, a := range x.attrs() {
		b.WriteByte(' ')
		if a.Name.Space == namespaceXML {
			b.WriteString("xml:")
		}
		b.WriteString(a.Name.Local)
		b.WriteString(`="`)
		_ = xml.EscapeText(&b, []byte(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(x.Inner)
	b.WriteString("</div>")
	return b.String()
}
