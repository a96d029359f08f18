// Package r5 contains the FHIR R5 data types and resources.
//
// Every complex type, backbone element and resource binds its fields to a descriptor table,
// which drives FHIR-JSON and FHIR-XML (de)serialization as well as FHIRPath navigation.
// Types are plain values, optional fields are pointers and repeated fields are slices:
//
//	p := r5.Patient{
//		Id:     &r5.Id{Value: ptr.To("example")},
//		Active: &r5.Boolean{Value: ptr.To(true)},
//	}
//	b, err := r5.EmitJSON(p, false)
package r5

import (
	"bytes"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/model"
)

type deserializable[T any] interface {
	*T
	encoding.Deserializable
}

// ParseJSON parses a FHIR-JSON document into a value of type T.
// For resources, the resourceType of the document must match T.
func ParseJSON[T any, PT deserializable[T]](data []byte) (T, error) {
	var v T
	err := fhirjson.Unmarshal(data, PT(&v))
	return v, err
}

// ParseXML parses a FHIR-XML document into a value of type T.
// For resources, the root element must match T.
func ParseXML[T any, PT deserializable[T]](data []byte) (T, error) {
	var v T
	err := fhirxml.Unmarshal(data, PT(&v))
	return v, err
}

// ParseJSONResource parses a FHIR-JSON resource of any supported type.
func ParseJSONResource(data []byte) (model.Resource, error) {
	resourceType, err := peekResourceType(data)
	if err != nil {
		return nil, err
	}
	var r ContainedResource
	if err := fhirjson.UnmarshalResource(data, resourceType, &r); err != nil {
		return nil, err
	}
	return r.Resource, nil
}

// ParseXMLResource parses a FHIR-XML resource of any supported type.
func ParseXMLResource(data []byte) (model.Resource, error) {
	var r ContainedResource
	if err := fhirxml.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return nil, err
	}
	return r.Resource, nil
}

// EmitJSON returns the FHIR-JSON encoding of v, indented by two spaces if pretty is set.
func EmitJSON(v encoding.Serializable, pretty bool) ([]byte, error) {
	if pretty {
		return fhirjson.MarshalIndent(v, "", "  ")
	}
	return fhirjson.Marshal(v)
}

// EmitXML returns the FHIR-XML encoding of v, indented by two spaces if pretty is set.
func EmitXML(v encoding.Serializable, pretty bool) ([]byte, error) {
	if pretty {
		return fhirxml.MarshalIndent(v, "", "  ")
	}
	return fhirxml.Marshal(v)
}

func resourceID(id *Id) (string, bool) {
	if id == nil {
		return "", false
	}
	return id.Get()
}
