package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Bundle is a container for a collection of resources.
type Bundle struct {
	Id            *Id
	Meta          *Meta
	ImplicitRules *Uri
	Language      *Code
	Identifier    *Identifier
	Type          *Code
	Timestamp     *Instant
	Total         *UnsignedInt
	Link          []BundleLink
	Entry         []BundleEntry
	Issues        *ContainedResource
}

var bundleType = newType("Bundle", model.KindResource, model.BaseResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *Bundle) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *Bundle) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *Bundle) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *Bundle) **Code { return &o.Language }),
	singleElement(desc("identifier", "Identifier", 0, 1, summary), func(o *Bundle) **Identifier { return &o.Identifier }),
	singlePrimitive(desc("type", "code", 1, 1, summary), func(o *Bundle) **Code { return &o.Type }),
	singlePrimitive(desc("timestamp", "instant", 0, 1, summary), func(o *Bundle) **Instant { return &o.Timestamp }),
	singlePrimitive(desc("total", "unsignedInt", 0, 1, summary), func(o *Bundle) **UnsignedInt { return &o.Total }),
	repeatedElement(desc("link", "BundleLink", 0, model.Unbounded, summary), func(o *Bundle) *[]BundleLink { return &o.Link }),
	repeatedElement(desc("entry", "BundleEntry", 0, model.Unbounded, summary), func(o *Bundle) *[]BundleEntry { return &o.Entry }),
	singleResource(desc("issues", "Resource", 0, 1, summary), func(o *Bundle) **ContainedResource { return &o.Issues }),
)

func (o Bundle) TypeName() string {
	return "Bundle"
}

func (o Bundle) Serialize(s encoding.Serializer) error {
	return bundleType.serialize(&o, s)
}

func (o *Bundle) Deserialize(d encoding.Deserializer) error {
	return bundleType.deserialize(o, d)
}

func (o Bundle) Children(name ...string) fhirpath.Collection {
	return bundleType.children(&o, name)
}

func (o Bundle) Equal(other fhirpath.Element) (bool, bool) {
	return bundleType.equal(o, other)
}

func (o Bundle) TypeInfo() fhirpath.TypeInfo {
	return bundleType.info
}

func (o Bundle) String() string {
	return compact(o)
}

func (o Bundle) ResourceType() string {
	return "Bundle"
}

func (o Bundle) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *Bundle) mapVisitor() encoding.MapVisitor {
	return bundleType.visitor(o)
}

func (o Bundle) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *Bundle) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o Bundle) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *Bundle) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

type BundleLink struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Relation          *Code
	Url               *Uri
}

var bundleLinkType = newType("BundleLink", model.KindBackbone, model.BaseNone,
	func(o *BundleLink) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *BundleLink) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *BundleLink) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("relation", "code", 1, 1, summary), func(o *BundleLink) **Code { return &o.Relation }),
	singlePrimitive(desc("url", "uri", 1, 1, summary), func(o *BundleLink) **Uri { return &o.Url }),
)

func (o BundleLink) TypeName() string {
	return "BundleLink"
}

func (o BundleLink) Serialize(s encoding.Serializer) error {
	return bundleLinkType.serialize(&o, s)
}

func (o *BundleLink) Deserialize(d encoding.Deserializer) error {
	return bundleLinkType.deserialize(o, d)
}

func (o BundleLink) Children(name ...string) fhirpath.Collection {
	return bundleLinkType.children(&o, name)
}

func (o BundleLink) Equal(other fhirpath.Element) (bool, bool) {
	return bundleLinkType.equal(o, other)
}

func (o BundleLink) TypeInfo() fhirpath.TypeInfo {
	return bundleLinkType.info
}

func (o BundleLink) String() string {
	return compact(o)
}

func (o *BundleLink) extensions() *[]Extension {
	return &o.Extension
}

func (o *BundleLink) elementID() **string {
	return &o.Id
}

type BundleEntry struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Link              []BundleLink
	FullUrl           *Uri
	Resource          *ContainedResource
	Search            *BundleEntrySearch
	Request           *BundleEntryRequest
	Response          *BundleEntryResponse
}

var bundleEntryType = newType("BundleEntry", model.KindBackbone, model.BaseNone,
	func(o *BundleEntry) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *BundleEntry) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *BundleEntry) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("link", "BundleLink", 0, model.Unbounded, summary), func(o *BundleEntry) *[]BundleLink { return &o.Link }),
	singlePrimitive(desc("fullUrl", "uri", 0, 1, summary), func(o *BundleEntry) **Uri { return &o.FullUrl }),
	singleResource(desc("resource", "Resource", 0, 1, summary), func(o *BundleEntry) **ContainedResource { return &o.Resource }),
	singleElement(desc("search", "BundleEntrySearch", 0, 1, summary), func(o *BundleEntry) **BundleEntrySearch { return &o.Search }),
	singleElement(desc("request", "BundleEntryRequest", 0, 1, summary), func(o *BundleEntry) **BundleEntryRequest { return &o.Request }),
	singleElement(desc("response", "BundleEntryResponse", 0, 1, summary), func(o *BundleEntry) **BundleEntryResponse { return &o.Response }),
)

func (o BundleEntry) TypeName() string {
	return "BundleEntry"
}

func (o BundleEntry) Serialize(s encoding.Serializer) error {
	return bundleEntryType.serialize(&o, s)
}

func (o *BundleEntry) Deserialize(d encoding.Deserializer) error {
	return bundleEntryType.deserialize(o, d)
}

func (o BundleEntry) Children(name ...string) fhirpath.Collection {
	return bundleEntryType.children(&o, name)
}

func (o BundleEntry) Equal(other fhirpath.Element) (bool, bool) {
	return bundleEntryType.equal(o, other)
}

func (o BundleEntry) TypeInfo() fhirpath.TypeInfo {
	return bundleEntryType.info
}

func (o BundleEntry) String() string {
	return compact(o)
}

func (o *BundleEntry) extensions() *[]Extension {
	return &o.Extension
}

func (o *BundleEntry) elementID() **string {
	return &o.Id
}

type BundleEntrySearch struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Mode              *Code
	Score             *Decimal
}

var bundleEntrySearchType = newType("BundleEntrySearch", model.KindBackbone, model.BaseNone,
	func(o *BundleEntrySearch) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *BundleEntrySearch) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *BundleEntrySearch) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("mode", "code", 0, 1, summary), func(o *BundleEntrySearch) **Code { return &o.Mode }),
	singlePrimitive(desc("score", "decimal", 0, 1, summary), func(o *BundleEntrySearch) **Decimal { return &o.Score }),
)

func (o BundleEntrySearch) TypeName() string {
	return "BundleEntrySearch"
}

func (o BundleEntrySearch) Serialize(s encoding.Serializer) error {
	return bundleEntrySearchType.serialize(&o, s)
}

func (o *BundleEntrySearch) Deserialize(d encoding.Deserializer) error {
	return bundleEntrySearchType.deserialize(o, d)
}

func (o BundleEntrySearch) Children(name ...string) fhirpath.Collection {
	return bundleEntrySearchType.children(&o, name)
}

func (o BundleEntrySearch) Equal(other fhirpath.Element) (bool, bool) {
	return bundleEntrySearchType.equal(o, other)
}

func (o BundleEntrySearch) TypeInfo() fhirpath.TypeInfo {
	return bundleEntrySearchType.info
}

func (o BundleEntrySearch) String() string {
	return compact(o)
}

func (o *BundleEntrySearch) extensions() *[]Extension {
	return &o.Extension
}

func (o *BundleEntrySearch) elementID() **string {
	return &o.Id
}

type BundleEntryRequest struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Method            *Code
	Url               *Uri
	IfNoneMatch       *String
	IfModifiedSince   *Instant
	IfMatch           *String
	IfNoneExist       *String
}

var bundleEntryRequestType = newType("BundleEntryRequest", model.KindBackbone, model.BaseNone,
	func(o *BundleEntryRequest) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *BundleEntryRequest) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *BundleEntryRequest) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("method", "code", 1, 1, summary), func(o *BundleEntryRequest) **Code { return &o.Method }),
	singlePrimitive(desc("url", "uri", 1, 1, summary), func(o *BundleEntryRequest) **Uri { return &o.Url }),
	singlePrimitive(desc("ifNoneMatch", "string", 0, 1, summary), func(o *BundleEntryRequest) **String { return &o.IfNoneMatch }),
	singlePrimitive(desc("ifModifiedSince", "instant", 0, 1, summary), func(o *BundleEntryRequest) **Instant { return &o.IfModifiedSince }),
	singlePrimitive(desc("ifMatch", "string", 0, 1, summary), func(o *BundleEntryRequest) **String { return &o.IfMatch }),
	singlePrimitive(desc("ifNoneExist", "string", 0, 1, summary), func(o *BundleEntryRequest) **String { return &o.IfNoneExist }),
)

func (o BundleEntryRequest) TypeName() string {
	return "BundleEntryRequest"
}

func (o BundleEntryRequest) Serialize(s encoding.Serializer) error {
	return bundleEntryRequestType.serialize(&o, s)
}

func (o *BundleEntryRequest) Deserialize(d encoding.Deserializer) error {
	return bundleEntryRequestType.deserialize(o, d)
}

func (o BundleEntryRequest) Children(name ...string) fhirpath.Collection {
	return bundleEntryRequestType.children(&o, name)
}

func (o BundleEntryRequest) Equal(other fhirpath.Element) (bool, bool) {
	return bundleEntryRequestType.equal(o, other)
}

func (o BundleEntryRequest) TypeInfo() fhirpath.TypeInfo {
	return bundleEntryRequestType.info
}

func (o BundleEntryRequest) String() string {
	return compact(o)
}

func (o *BundleEntryRequest) extensions() *[]Extension {
	return &o.Extension
}

func (o *BundleEntryRequest) elementID() **string {
	return &o.Id
}

type BundleEntryResponse struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Status            *String
	Location          *Uri
	Etag              *String
	LastModified      *Instant
	Outcome           *ContainedResource
}

var bundleEntryResponseType = newType("BundleEntryResponse", model.KindBackbone, model.BaseNone,
	func(o *BundleEntryResponse) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *BundleEntryResponse) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *BundleEntryResponse) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("status", "string", 1, 1, summary), func(o *BundleEntryResponse) **String { return &o.Status }),
	singlePrimitive(desc("location", "uri", 0, 1, summary), func(o *BundleEntryResponse) **Uri { return &o.Location }),
	singlePrimitive(desc("etag", "string", 0, 1, summary), func(o *BundleEntryResponse) **String { return &o.Etag }),
	singlePrimitive(desc("lastModified", "instant", 0, 1, summary), func(o *BundleEntryResponse) **Instant { return &o.LastModified }),
	singleResource(desc("outcome", "Resource", 0, 1, summary), func(o *BundleEntryResponse) **ContainedResource { return &o.Outcome }),
)

func (o BundleEntryResponse) TypeName() string {
	return "BundleEntryResponse"
}

func (o BundleEntryResponse) Serialize(s encoding.Serializer) error {
	return bundleEntryResponseType.serialize(&o, s)
}

func (o *BundleEntryResponse) Deserialize(d encoding.Deserializer) error {
	return bundleEntryResponseType.deserialize(o, d)
}

func (o BundleEntryResponse) Children(name ...string) fhirpath.Collection {
	return bundleEntryResponseType.children(&o, name)
}

func (o BundleEntryResponse) Equal(other fhirpath.Element) (bool, bool) {
	return bundleEntryResponseType.equal(o, other)
}

func (o BundleEntryResponse) TypeInfo() fhirpath.TypeInfo {
	return bundleEntryResponseType.info
}

func (o BundleEntryResponse) String() string {
	return compact(o)
}

func (o *BundleEntryResponse) extensions() *[]Extension {
	return &o.Extension
}

func (o *BundleEntryResponse) elementID() **string {
	return &o.Id
}
