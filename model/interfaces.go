// Package model declares the capabilities shared by all FHIR types, independent of the release.
package model

import (
	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
)

// Element is any element in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements.
type Element interface {
	fhirpath.Element
	encoding.Serializable
	// TypeName returns the FHIR type name, like "HumanName" or "dateTime".
	TypeName() string
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}

// Primitive is any FHIR primitive element.
type Primitive interface {
	Element
	fhirpath.Primitive
}
