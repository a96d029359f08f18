package r5

import (
	"slices"

	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Extension is additional content defined by implementations.
//
// Either nested extensions or a value may be present, not both.
type Extension struct {
	Id        *string
	Extension []Extension
	Url       string
	Value     AnyType
}

var extensionType = newType("Extension", model.KindComplex, model.BaseNone,
	func(o *Extension) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Extension) *[]Extension { return &o.Extension }),
	uriAttribute(desc("url", "uri", 1, 1), func(o *Extension) *string { return &o.Url }),
	choice(choiceDesc("value", 0, anyTypeNames), func(o *Extension) *AnyType { return &o.Value }),
)

func (e Extension) checkInvariant() error {
	if e.Value != nil && len(e.Extension) > 0 {
		return &encoding.InvariantError{Type: "Extension", Msg: "extension " + e.Url + " has both a value and nested extensions"}
	}
	return nil
}

func (e Extension) TypeName() string { return "Extension" }

func (e Extension) Serialize(s encoding.Serializer) error {
	if err := e.checkInvariant(); err != nil {
		return err
	}
	es, err := s.SerializeExtension()
	if err != nil {
		return err
	}
	if err := es.SerializeID(e.Id); err != nil {
		return err
	}
	if err := es.SerializeURL(e.Url); err != nil {
		return err
	}
	if err := extensionType.serializeFields(&e, es); err != nil {
		return err
	}
	return es.End()
}

func (e *Extension) Deserialize(d encoding.Deserializer) error {
	if err := extensionType.deserialize(e, d); err != nil {
		return err
	}
	return e.checkInvariant()
}

func (e Extension) Children(name ...string) fhirpath.Collection {
	return extensionType.children(&e, name)
}

func (e Extension) Equal(other fhirpath.Element) (bool, bool) {
	return extensionType.equal(e, other)
}

func (e Extension) TypeInfo() fhirpath.TypeInfo { return extensionType.info }
func (e Extension) String() string              { return compact(e) }

// extensible is implemented by pointers to every element and domain resource with extensions.
type extensible interface {
	extensions() *[]Extension
}

// identifiable is implemented by pointers to every element with an element id.
type identifiable interface {
	elementID() **string
}

func (e *Extension) extensions() *[]Extension { return &e.Extension }
func (e *Extension) elementID() **string      { return &e.Id }

func (p *primitive[V, K]) extensions() *[]Extension { return &p.Extension }
func (p *primitive[V, K]) elementID() **string      { return &p.Id }

// ElementID returns the id of an element.
func ElementID(e any) (string, bool) {
	x, ok := e.(identifiable)
	if !ok || *x.elementID() == nil {
		return "", false
	}
	return **x.elementID(), true
}

// SetElementID sets the id of the element e points to. It reports whether e carries an element id.
func SetElementID(e any, id string) bool {
	x, ok := e.(identifiable)
	if !ok {
		return false
	}
	*x.elementID() = &id
	return true
}

// Extensions returns the extensions of an element, filtered by url if any urls are given.
func Extensions(e any, url ...string) []Extension {
	x, ok := e.(extensible)
	if !ok {
		return nil
	}
	if len(url) == 0 {
		return *x.extensions()
	}
	var matching []Extension
	for _, ext := range *x.extensions() {
		if slices.Contains(url, ext.Url) {
			matching = append(matching, ext)
		}
	}
	return matching
}

// AddExtension appends ext to the element e points to. It reports whether e carries extensions.
func AddExtension(e any, ext Extension) bool {
	x, ok := e.(extensible)
	if !ok {
		return false
	}
	*x.extensions() = append(*x.extensions(), ext)
	return true
}

// ReplaceExtensions replaces all extensions with the given url by ext.
// The first replaced extension keeps its position, ext is appended if none matched.
func ReplaceExtensions(e any, ext Extension) bool {
	x, ok := e.(extensible)
	if !ok {
		return false
	}
	exts := x.extensions()
	var replaced []Extension
	found := false
	for _, old := range *exts {
		if old.Url != ext.Url {
			replaced = append(replaced, old)
		} else if !found {
			replaced = append(replaced, ext)
			found = true
		}
	}
	if !found {
		replaced = append(replaced, ext)
	}
	*exts = replaced
	return true
}
