package r5

import (
	"fmt"
	"slices"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// descriptors holds the descriptor of every complex type, backbone element and resource by name.
var descriptors = map[string]model.TypeDescriptor{}

// Descriptor returns the descriptor of the named complex type, backbone element or resource.
func Descriptor(typeName string) (model.TypeDescriptor, bool) {
	d, ok := descriptors[typeName]
	return d, ok
}

type fieldFlag int

const (
	summary fieldFlag = iota + 1
	modifier
)

func desc(name, typeName string, min, max int, flags ...fieldFlag) model.FieldDescriptor {
	return model.FieldDescriptor{
		Name:     name,
		Type:     typeName,
		Min:      min,
		Max:      max,
		Summary:  slices.Contains(flags, summary),
		Modifier: slices.Contains(flags, modifier),
	}
}

func choiceDesc(name string, min int, types []string, flags ...fieldFlag) model.FieldDescriptor {
	d := desc(name, "", min, 1, flags...)
	d.Choice = types
	return d
}

// staging collects state of a struct while its keys are visited, it is resolved
// once the struct is closed.
type staging struct {
	typeName string
	seen     map[string]bool
	choices  map[string]string
	sidecars map[string]any
}

func newStaging(typeName string) *staging {
	return &staging{
		typeName: typeName,
		seen:     map[string]bool{},
		choices:  map[string]string{},
		sidecars: map[string]any{},
	}
}

// once reports a CardinalityError for the second occurrence of a single valued key.
func (st *staging) once(key string) error {
	if st.seen[key] {
		return &encoding.CardinalityError{Path: st.typeName + "." + key, Got: 2, Expected: "0..1"}
	}
	st.seen[key] = true
	return nil
}

// choose records the type of a choice field, only one type per field may occur.
func (st *staging) choose(name, typeName string) error {
	if prev, ok := st.choices[name]; ok && prev != typeName {
		return &encoding.InvariantError{
			Type: st.typeName,
			Msg:  fmt.Sprintf("choice %s[x] has values of type %s and %s", name, prev, typeName),
		}
	}
	st.choices[name] = typeName
	return nil
}

// fieldDef binds a field descriptor to the Go field of O.
type fieldDef[O any] struct {
	model.FieldDescriptor
	// keys are the wire keys of the field, including sidecars and choice names.
	keys      []string
	serialize func(o *O, s encoding.StructSerializer) error
	decode    func(o *O, st *staging, key string, d encoding.Deserializer) error
	finish    func(o *O, st *staging) error
	children  func(o *O) fhirpath.Collection
}

// typeDef binds a type descriptor to the Go type O.
type typeDef[O any] struct {
	desc   model.TypeDescriptor
	fields []fieldDef[O]
	keys   map[string]int
	info   fhirpath.TypeInfo
	// id is the element id of complex types and backbone elements, nil for resources.
	id func(o *O) **string
}

func newType[O any](name string, kind model.Kind, base model.Base, id func(*O) **string, fields ...fieldDef[O]) *typeDef[O] {
	t := &typeDef[O]{
		desc:   model.TypeDescriptor{Name: name, Kind: kind, Base: base},
		fields: fields,
		keys:   map[string]int{},
		id:     id,
	}
	elements := []string{}
	if id != nil {
		t.keys["id"] = -1
		elements = append(elements, "id")
	}
	for i, f := range fields {
		t.desc.Fields = append(t.desc.Fields, f.FieldDescriptor)
		elements = append(elements, f.Name)
		for _, k := range f.keys {
			if _, dup := t.keys[k]; dup {
				panic(fmt.Sprintf("duplicate key %s in %s", k, name))
			}
			t.keys[k] = i
		}
	}
	t.info = fhirpath.TypeInfo{
		TypeSpecifier: fhirpath.TypeSpecifier{Namespace: "FHIR", Name: name},
		BaseTypes:     baseTypes(kind, base),
		Elements:      elements,
	}
	descriptors[name] = t.desc
	return t
}

func baseTypes(kind model.Kind, base model.Base) []fhirpath.TypeSpecifier {
	switch kind {
	case model.KindBackbone:
		return fhirBases("BackboneElement", "Element", "Base")
	case model.KindResource:
		if base == model.BaseDomainResource {
			return fhirBases("DomainResource", "Resource", "Base")
		}
		return fhirBases("Resource", "Base")
	default:
		return fhirBases("DataType", "Element", "Base")
	}
}

func (t *typeDef[O]) serialize(o *O, s encoding.Serializer) error {
	var (
		ss  encoding.StructSerializer
		err error
	)
	if t.desc.Kind == model.KindResource {
		ss, err = s.SerializeResource(t.desc.Name)
	} else {
		ss, err = s.SerializeStruct()
	}
	if err != nil {
		return err
	}
	if t.id != nil {
		if err := ss.SerializeID(*t.id(o)); err != nil {
			return err
		}
	}
	if err := t.serializeFields(o, ss); err != nil {
		return err
	}
	return ss.End()
}

func (t *typeDef[O]) serializeFields(o *O, ss encoding.StructSerializer) error {
	for _, f := range t.fields {
		if f.serialize == nil {
			continue
		}
		if err := f.serialize(o, ss); err != nil {
			return err
		}
	}
	return nil
}

func (t *typeDef[O]) deserialize(o *O, d encoding.Deserializer) error {
	if t.desc.Kind != model.KindResource {
		return d.DecodeStruct(t.visitor(o))
	}
	return d.DecodeResource(func(resourceType string) (encoding.MapVisitor, error) {
		if resourceType != t.desc.Name {
			return nil, &encoding.UnexpectedEventError{Got: "resource " + resourceType, Want: t.desc.Name}
		}
		return t.visitor(o), nil
	})
}

// visitor dispatches the keys of a struct to its fields.
func (t *typeDef[O]) visitor(o *O) encoding.MapVisitor {
	return encoding.MapVisitorFunc(func(m encoding.MapAccess) error {
		st := newStaging(t.desc.Name)
		for {
			key, ok, err := m.NextKey()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			i, ok := t.keys[key]
			if !ok {
				return &encoding.UnknownFieldError{Path: t.desc.Name, Key: key}
			}
			if i < 0 {
				if err := t.decodeID(o, st, m.NextValue()); err != nil {
					return err
				}
				continue
			}
			if err := t.fields[i].decode(o, st, key, m.NextValue()); err != nil {
				return err
			}
		}
		for _, f := range t.fields {
			if f.finish == nil {
				continue
			}
			if err := f.finish(o, st); err != nil {
				return err
			}
		}
		return nil
	})
}

func (t *typeDef[O]) decodeID(o *O, st *staging, d encoding.Deserializer) error {
	if err := st.once("id"); err != nil {
		return err
	}
	id, err := d.DecodeString()
	if err != nil {
		return err
	}
	*t.id(o) = &id
	return nil
}

func (t *typeDef[O]) children(o *O, names []string) fhirpath.Collection {
	var c fhirpath.Collection
	if t.id != nil && (len(names) == 0 || slices.Contains(names, "id")) {
		if id := *t.id(o); id != nil {
			c = append(c, fhirpath.String(*id))
		}
	}
	for _, f := range t.fields {
		if len(names) == 0 || slices.Contains(names, f.Name) {
			c = append(c, f.children(o)...)
		}
	}
	return c
}

// compact renders v as FHIR-JSON, used for string representation and structural equality.
func compact(v encoding.Serializable) string {
	b, err := fhirjson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(b)
}

func (t *typeDef[O]) equal(self encoding.Serializable, other fhirpath.Element) (bool, bool) {
	o, ok := other.(model.Element)
	if !ok || o.TypeName() != t.desc.Name {
		return false, true
	}
	return compact(self) == compact(o), true
}

// primitivePtr is implemented by pointers to primitives.
type primitivePtr[P any] interface {
	*P
	encoding.Deserializable
	deserializeSidecar(d encoding.Deserializer) error
	Combine(sidecar P)
	isEmpty() bool
}

// present drops primitives without value, id and extensions, they are absent.
func present[P any, PP primitivePtr[P]](items []P) []P {
	if !slices.ContainsFunc(items, func(p P) bool { return PP(&p).isEmpty() }) {
		return items
	}
	return slices.DeleteFunc(slices.Clone(items), func(p P) bool { return PP(&p).isEmpty() })
}

// singlePrimitive binds an optional primitive field.
func singlePrimitive[O any, P model.Primitive, PP primitivePtr[P]](d model.FieldDescriptor, get func(*O) **P) fieldDef[O] {
	sidecarKey := "_" + d.Name
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name, sidecarKey},
		serialize: func(o *O, s encoding.StructSerializer) error {
			p := *get(o)
			if p == nil || PP(p).isEmpty() {
				return nil
			}
			return (*p).Serialize(s.Field(d.Name))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if err := st.once(key); err != nil {
				return err
			}
			if key == sidecarKey {
				var sc P
				if err := PP(&sc).deserializeSidecar(dec); err != nil {
					return err
				}
				st.sidecars[d.Name] = sc
				return nil
			}
			var p P
			if err := PP(&p).Deserialize(dec); err != nil {
				return err
			}
			*get(o) = &p
			return nil
		},
		finish: func(o *O, st *staging) error {
			if sc, ok := st.sidecars[d.Name].(P); ok {
				if *get(o) == nil {
					*get(o) = new(P)
				}
				PP(*get(o)).Combine(sc)
			}
			if p := *get(o); p != nil && PP(p).isEmpty() {
				*get(o) = nil
			}
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			if p := *get(o); p != nil && !PP(p).isEmpty() {
				return fhirpath.Collection{*p}
			}
			return nil
		},
	}
}

// repeatedPrimitive binds a repeated primitive field. JSON sidecars are positional.
func repeatedPrimitive[O any, P model.Primitive, PP primitivePtr[P]](d model.FieldDescriptor, get func(*O) *[]P) fieldDef[O] {
	sidecarKey := "_" + d.Name
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name, sidecarKey},
		serialize: func(o *O, s encoding.StructSerializer) error {
			return serializeVec(s.Field(d.Name), present[P, PP](*get(o)))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if key == sidecarKey {
				sidecars, _ := st.sidecars[d.Name].([]P)
				err := dec.DecodeVec(encoding.VecVisitorFunc(func(a encoding.VecAccess) error {
					for {
						ed, ok, err := a.NextElement()
						if err != nil || !ok {
							return err
						}
						var sc P
						if err := PP(&sc).deserializeSidecar(ed); err != nil {
							return err
						}
						sidecars = append(sidecars, sc)
					}
				}))
				st.sidecars[d.Name] = sidecars
				return err
			}
			return deserializeVec[P, PP](dec, get(o))
		},
		finish: func(o *O, st *staging) error {
			values := get(o)
			if sidecars, ok := st.sidecars[d.Name].([]P); ok {
				if len(*values) < len(sidecars) {
					*values = append(*values, make([]P, len(sidecars)-len(*values))...)
				}
				for i, sc := range sidecars {
					PP(&(*values)[i]).Combine(sc)
				}
			}
			// after combining, so sidecar positions still line up
			*values = present[P, PP](*values)
			if len(*values) == 0 {
				*values = nil
			}
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			return collect(present[P, PP](*get(o)))
		},
	}
}

// elementPtr is implemented by pointers to complex types and backbone elements.
type elementPtr[T any] interface {
	*T
	encoding.Deserializable
}

// singleElement binds an optional complex or backbone field.
func singleElement[O any, T model.Element, PT elementPtr[T]](d model.FieldDescriptor, get func(*O) **T) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		serialize: func(o *O, s encoding.StructSerializer) error {
			v := *get(o)
			if v == nil {
				return nil
			}
			return (*v).Serialize(s.Field(d.Name))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if err := st.once(key); err != nil {
				return err
			}
			var v T
			if err := PT(&v).Deserialize(dec); err != nil {
				return err
			}
			*get(o) = &v
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			if v := *get(o); v != nil {
				return fhirpath.Collection{*v}
			}
			return nil
		},
	}
}

// repeatedElement binds a repeated complex or backbone field.
func repeatedElement[O any, T model.Element, PT elementPtr[T]](d model.FieldDescriptor, get func(*O) *[]T) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		serialize: func(o *O, s encoding.StructSerializer) error {
			return serializeVec(s.Field(d.Name), *get(o))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			return deserializeVec[T, PT](dec, get(o))
		},
		children: func(o *O) fhirpath.Collection {
			return collect(*get(o))
		},
	}
}

// choice binds a choice-of-type field. Every allowed type has its own wire key.
func choice[O any](d model.FieldDescriptor, get func(*O) *AnyType) fieldDef[O] {
	keyTypes := map[string]string{}
	var keys []string
	for _, t := range d.Choice {
		k := d.ChoiceName(t)
		keyTypes[k] = t
		keys = append(keys, k)
		if isPrimitiveType(t) {
			keyTypes["_"+k] = t
			keys = append(keys, "_"+k)
		}
	}
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            keys,
		serialize: func(o *O, s encoding.StructSerializer) error {
			v := *get(o)
			if v == nil {
				return nil
			}
			if !slices.Contains(d.Choice, v.TypeName()) {
				return &encoding.InvariantError{
					Type: d.Name + "[x]",
					Msg:  fmt.Sprintf("type %s is not allowed, expected one of %v", v.TypeName(), d.Choice),
				}
			}
			return v.Serialize(s.Field(d.ChoiceName(v.TypeName())))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			typeName := keyTypes[key]
			if err := st.choose(d.Name, typeName); err != nil {
				return err
			}
			if err := st.once(key); err != nil {
				return err
			}
			codec := anyTypes[typeName]
			if key[0] == '_' {
				sc, err := codec.decodeSidecar(dec)
				if err != nil {
					return err
				}
				st.sidecars[d.Name] = sc
				return nil
			}
			v, err := codec.decode(dec)
			if err != nil {
				return err
			}
			*get(o) = v
			return nil
		},
		finish: func(o *O, st *staging) error {
			v := get(o)
			if sc, ok := st.sidecars[d.Name].(AnyType); ok {
				if *v == nil {
					*v = sc
				} else if p, ok := (*v).(interface{ withSidecar(AnyType) AnyType }); ok {
					*v = p.withSidecar(sc)
				}
			}
			if p, ok := (*v).(interface{ isEmpty() bool }); ok && p.isEmpty() {
				*v = nil
			}
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			if v := *get(o); v != nil {
				return fhirpath.Collection{v}
			}
			return nil
		},
	}
}

// singleResource binds an inline resource, like Bundle.entry.resource.
func singleResource[O any](d model.FieldDescriptor, get func(*O) **ContainedResource) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		serialize: func(o *O, s encoding.StructSerializer) error {
			r := *get(o)
			if r == nil {
				return nil
			}
			return r.Serialize(s.Field(d.Name))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if err := st.once(key); err != nil {
				return err
			}
			var r ContainedResource
			if err := r.Deserialize(dec); err != nil {
				return err
			}
			*get(o) = &r
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			if r := *get(o); r != nil && r.Resource != nil {
				return fhirpath.Collection{r.Resource}
			}
			return nil
		},
	}
}

// repeatedResource binds contained resources.
func repeatedResource[O any](d model.FieldDescriptor, get func(*O) *[]ContainedResource) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		serialize: func(o *O, s encoding.StructSerializer) error {
			return serializeVec(s.Field(d.Name), *get(o))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			return deserializeVec(dec, get(o))
		},
		children: func(o *O) fhirpath.Collection {
			var c fhirpath.Collection
			for _, r := range *get(o) {
				if r.Resource != nil {
					c = append(c, r.Resource)
				}
			}
			return c
		},
	}
}

// narrativeDiv binds the xhtml div of a Narrative.
func narrativeDiv[O any](d model.FieldDescriptor, get func(*O) *Xhtml) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		serialize: func(o *O, s encoding.StructSerializer) error {
			x := get(o)
			if x.Value == "" {
				return nil
			}
			return x.Serialize(s.Field(d.Name))
		},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if err := st.once(key); err != nil {
				return err
			}
			return get(o).Deserialize(dec)
		},
		children: func(o *O) fhirpath.Collection {
			if x := get(o); x.Value != "" {
				return fhirpath.Collection{*x}
			}
			return nil
		},
	}
}

// uriAttribute binds a plain string which is an attribute in XML, like Extension.url.
func uriAttribute[O any](d model.FieldDescriptor, get func(*O) *string) fieldDef[O] {
	return fieldDef[O]{
		FieldDescriptor: d,
		keys:            []string{d.Name},
		decode: func(o *O, st *staging, key string, dec encoding.Deserializer) error {
			if err := st.once(key); err != nil {
				return err
			}
			s, err := dec.DecodeString()
			if err != nil {
				return err
			}
			*get(o) = s
			return nil
		},
		children: func(o *O) fhirpath.Collection {
			if s := *get(o); s != "" {
				return fhirpath.Collection{fhirpath.String(s)}
			}
			return nil
		},
	}
}

func collect[T fhirpath.Element](items []T) fhirpath.Collection {
	if len(items) == 0 {
		return nil
	}
	c := make(fhirpath.Collection, len(items))
	for i, item := range items {
		c[i] = item
	}
	return c
}

func serializeVec[T encoding.Serializable](s encoding.Serializer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	vs, err := s.SerializeVec(len(items))
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Serialize(vs.Element()); err != nil {
			return err
		}
	}
	return vs.End()
}

// deserializeVec appends the elements of a repeated field to items.
// XML yields one element per call, JSON the whole array.
func deserializeVec[T any, PT elementPtr[T]](d encoding.Deserializer, items *[]T) error {
	return d.DecodeVec(encoding.VecVisitorFunc(func(a encoding.VecAccess) error {
		for {
			ed, ok, err := a.NextElement()
			if err != nil || !ok {
				return err
			}
			var item T
			if err := PT(&item).Deserialize(ed); err != nil {
				return err
			}
			*items = append(*items, item)
		}
	}))
}
