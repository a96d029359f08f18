package r5_test

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/testdata"
	"github.com/damedic/fhir-r5-go/testdata/assert"
	"github.com/damedic/fhir-r5-go/utils/ptr"
	"github.com/google/go-cmp/cmp"
)

func TestRoundtripJSON(t *testing.T) {
	for name, jsonIn := range testdata.Examples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var r r5.ContainedResource
			if err := json.Unmarshal(jsonIn, &r); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			jsonOut, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestRoundtripXML(t *testing.T) {
	for name, xmlIn := range testdata.Examples("xml") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var r r5.ContainedResource
			if err := xml.Unmarshal(xmlIn, &r); err != nil {
				t.Fatalf("Failed to unmarshal XML: %v", err)
			}

			xmlOut, err := xml.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal XML: %v", err)
			}

			assert.XMLEqual(t, string(xmlIn), string(xmlOut))
		})
	}
}

func TestCrossFormat(t *testing.T) {
	for _, name := range []string{"patient-example", "observation-example"} {
		jsonIn := testdata.Example(name + ".json")
		xmlIn := testdata.Example(name + ".xml")

		t.Run(name+" xml to json", func(t *testing.T) {
			r, err := r5.ParseXMLResource(xmlIn)
			if err != nil {
				t.Fatal(err)
			}
			jsonOut, err := r5.EmitJSON(r, true)
			if err != nil {
				t.Fatal(err)
			}
			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})

		t.Run(name+" json to xml", func(t *testing.T) {
			r, err := r5.ParseJSONResource(jsonIn)
			if err != nil {
				t.Fatal(err)
			}
			xmlOut, err := r5.EmitXML(r, true)
			if err != nil {
				t.Fatal(err)
			}
			assert.XMLEqual(t, string(xmlIn), string(xmlOut))
		})
	}
}

func TestEmit(t *testing.T) {
	p := r5.Patient{
		Id:     &r5.Id{Value: ptr.To("ex")},
		Active: &r5.Boolean{Value: ptr.To(true)},
	}

	tests := []struct {
		name   string
		emit   func(v encoding.Serializable, pretty bool) ([]byte, error)
		pretty bool
		want   string
	}{
		{
			name: "compact json",
			emit: r5.EmitJSON,
			want: `{"resourceType":"Patient","id":"ex","active":true}`,
		},
		{
			name:   "pretty json",
			emit:   r5.EmitJSON,
			pretty: true,
			want:   "{\n  \"resourceType\": \"Patient\",\n  \"id\": \"ex\",\n  \"active\": true\n}",
		},
		{
			name: "compact xml",
			emit: r5.EmitXML,
			want: `<Patient xmlns="http://hl7.org/fhir"><id value="ex"></id><active value="true"></active></Patient>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.emit(p, tt.pretty)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimitiveExtensions(t *testing.T) {
	p, err := r5.ParseJSON[r5.Patient](testdata.Example("patient-example.json"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("single value with sidecar", func(t *testing.T) {
		birthDate, ok := p.BirthDate.Get()
		if !ok || birthDate != "1974-12-25" {
			t.Errorf("expected birthDate 1974-12-25, got %q", birthDate)
		}
		if len(p.BirthDate.Extension) != 1 || p.BirthDate.Extension[0].Url != "http://hl7.org/fhir/StructureDefinition/patient-birthTime" {
			t.Errorf("expected birthTime extension, got %v", p.BirthDate.Extension)
		}
	})

	t.Run("array with positional sidecar", func(t *testing.T) {
		given := p.Name[1].Given
		if len(given) != 3 {
			t.Fatalf("expected 3 given names, got %d", len(given))
		}
		for i, g := range given {
			if wantExt := i == 1; (len(g.Extension) > 0) != wantExt {
				t.Errorf("given[%d]: unexpected extensions %v", i, g.Extension)
			}
		}
	})

	t.Run("sidecar before value", func(t *testing.T) {
		in := `{"resourceType":"Patient","_gender":{"id":"g1"},"gender":"male"}`
		p, err := r5.ParseJSON[r5.Patient]([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		want := &r5.Code{Id: ptr.To("g1"), Value: ptr.To("male")}
		if diff := cmp.Diff(want, p.Gender); diff != "" {
			t.Errorf("gender mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extension without value", func(t *testing.T) {
		in := `{"resourceType":"Patient","_active":{"extension":[{"url":"http://example.org/reason","valueString":"unknown"}]}}`
		p, err := r5.ParseJSON[r5.Patient]([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if p.Active == nil || p.Active.HasValue() || len(p.Active.Extension) != 1 {
			t.Fatalf("expected active without value but with extension, got %v", p.Active)
		}
		out, err := r5.EmitJSON(p, false)
		if err != nil {
			t.Fatal(err)
		}
		assert.JSONEqual(t, in, string(out))
	})

	t.Run("array sidecar only", func(t *testing.T) {
		in := `{"resourceType":"Patient","name":[{"given":["A",null],"_given":[null,{"id":"g2"}]}]}`
		p, err := r5.ParseJSON[r5.Patient]([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		want := []r5.String{{Value: ptr.To("A")}, {Id: ptr.To("g2")}}
		if diff := cmp.Diff(want, p.Name[0].Given); diff != "" {
			t.Errorf("given mismatch (-want +got):\n%s", diff)
		}
		out, err := r5.EmitJSON(p, false)
		if err != nil {
			t.Fatal(err)
		}
		assert.JSONEqual(t, in, string(out))
	})
}

func TestAbsentPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		parse    func([]byte) (r5.Patient, error)
		in       string
		wantJSON string
		wantXML  string
	}{
		{
			name:     "json null",
			parse:    r5.ParseJSON[r5.Patient],
			in:       `{"resourceType":"Patient","active":null,"name":[{"given":[null,"x"]}]}`,
			wantJSON: `{"resourceType":"Patient","name":[{"given":["x"]}]}`,
			wantXML:  `<Patient xmlns="http://hl7.org/fhir"><name><given value="x"></given></name></Patient>`,
		},
		{
			name:     "json null with empty sidecar",
			parse:    r5.ParseJSON[r5.Patient],
			in:       `{"resourceType":"Patient","name":[{"given":[null,"x"],"_given":[{},null]}]}`,
			wantJSON: `{"resourceType":"Patient","name":[{"given":["x"]}]}`,
			wantXML:  `<Patient xmlns="http://hl7.org/fhir"><name><given value="x"></given></name></Patient>`,
		},
		{
			name:     "empty xml element",
			parse:    r5.ParseXML[r5.Patient],
			in:       `<Patient xmlns="http://hl7.org/fhir"><active/><name><given/><given value="x"/></name></Patient>`,
			wantJSON: `{"resourceType":"Patient","name":[{"given":["x"]}]}`,
			wantXML:  `<Patient xmlns="http://hl7.org/fhir"><name><given value="x"></given></name></Patient>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if p.Active != nil {
				t.Errorf("expected active to be absent, got %v", p.Active)
			}
			if got := p.Children("active"); len(got) != 0 {
				t.Errorf("expected no active children, got %v", got)
			}

			jsonOut, err := r5.EmitJSON(p, false)
			if err != nil {
				t.Fatal(err)
			}
			assert.JSONEqual(t, tt.wantJSON, string(jsonOut))

			xmlOut, err := r5.EmitXML(p, false)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantXML, string(xmlOut)); diff != "" {
				t.Errorf("xml mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("set but empty", func(t *testing.T) {
		p := r5.Patient{Active: &r5.Boolean{}, Name: []r5.HumanName{{Given: []r5.String{{}, {Value: ptr.To("x")}}}}}
		out, err := r5.EmitJSON(p, false)
		if err != nil {
			t.Fatal(err)
		}
		assert.JSONEqual(t, `{"resourceType":"Patient","name":[{"given":["x"]}]}`, string(out))
		if got := p.Name[0].Children("given"); len(got) != 1 {
			t.Errorf("expected one given name, got %v", got)
		}
	})
}

func TestInstant(t *testing.T) {
	local := func(layout string) string {
		return time.Date(2015, 2, 7, 13, 28, 17, 239000000, time.UTC).In(time.Local).Format(layout)
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "2015-02-07T13:28:17.239+02:00", want: "2015-02-07T13:28:17.239+02:00"},
		{in: "2015-02-07T13:28:17Z", want: local("2006-01-02T15:04:05-07:00")},
		{in: "2015-02-07T13:28:17.239Z", want: local("2006-01-02T15:04:05.000-07:00")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"issued":"` + tt.in + `"}`
			o, err := r5.ParseJSON[r5.Observation]([]byte(in))
			if err != nil {
				t.Fatal(err)
			}
			got, _ := o.Issued.Get()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("issued mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("date only", func(t *testing.T) {
		in := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"issued":"2015-02-07"}`
		if _, err := r5.ParseJSON[r5.Observation]([]byte(in)); !errors.Is(err, encoding.ErrLexicalFormat) {
			t.Errorf("expected ErrLexicalFormat, got %v", err)
		}
	})
}

func TestChoice(t *testing.T) {
	p, err := r5.ParseJSON[r5.Patient]([]byte(`{"resourceType":"Patient","deceasedDateTime":"2015-02-14T13:42:00+10:00"}`))
	if err != nil {
		t.Fatal(err)
	}
	deceased, ok := p.Deceased.(r5.DateTime)
	if !ok {
		t.Fatalf("expected deceased to be a dateTime, got %T", p.Deceased)
	}
	if v, _ := deceased.Get(); v != "2015-02-14T13:42:00+10:00" {
		t.Errorf("unexpected value %s", v)
	}

	xmlOut, err := r5.EmitXML(p, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(xmlOut), `<deceasedDateTime value="2015-02-14T13:42:00+10:00">`) {
		t.Errorf("expected type suffixed element, got %s", xmlOut)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "two choice types",
			in:   `{"resourceType":"Patient","deceasedBoolean":false,"deceasedDateTime":"2020"}`,
			want: encoding.ErrInvariant,
		},
		{
			name: "extension with value and extensions",
			in:   `{"resourceType":"Patient","extension":[{"url":"http://example.org/x","valueString":"a","extension":[{"url":"y","valueBoolean":true}]}]}`,
			want: encoding.ErrInvariant,
		},
		{
			name: "invalid date",
			in:   `{"resourceType":"Patient","birthDate":"25.12.1974"}`,
			want: encoding.ErrLexicalFormat,
		},
		{
			name: "string for boolean",
			in:   `{"resourceType":"Patient","active":"true"}`,
			want: encoding.ErrLexicalFormat,
		},
		{
			name: "invalid code",
			in:   `{"resourceType":"Patient","gender":" male"}`,
			want: encoding.ErrLexicalFormat,
		},
		{
			name: "unknown field",
			in:   `{"resourceType":"Patient","colour":"red"}`,
			want: encoding.ErrUnknownField,
		},
		{
			name: "unknown field in sidecar",
			in:   `{"resourceType":"Patient","_active":{"colour":"red"}}`,
			want: encoding.ErrUnknownField,
		},
		{
			name: "repeated single field",
			in:   `{"resourceType":"Patient","active":true,"active":false}`,
			want: encoding.ErrCardinality,
		},
		{
			name: "truncated",
			in:   `{"resourceType":"Patient","active":`,
			want: encoding.ErrUnexpectedEvent,
		},
		{
			name: "missing resourceType",
			in:   `{"id":"example"}`,
			want: encoding.ErrUnexpectedEvent,
		},
		{
			name: "other resource type",
			in:   `{"resourceType":"Observation","status":"final"}`,
			want: encoding.ErrUnexpectedEvent,
		},
		{
			name: "object for primitive",
			in:   `{"resourceType":"Patient","active":{"value":true}}`,
			want: encoding.ErrUnexpectedEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r5.ParseJSON[r5.Patient]([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseResource(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := r5.ParseJSONResource(testdata.Example("observation-example.json"))
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := r.(*r5.Observation); !ok {
			t.Errorf("expected *r5.Observation, got %T", r)
		}
		if id, ok := r.ResourceId(); !ok || id == "" {
			t.Errorf("expected resource id, got %q", id)
		}
	})

	t.Run("xml", func(t *testing.T) {
		r, err := r5.ParseXMLResource(testdata.Example("patient-example.xml"))
		if err != nil {
			t.Fatal(err)
		}
		if r.ResourceType() != "Patient" {
			t.Errorf("expected Patient, got %s", r.ResourceType())
		}
	})

	t.Run("unknown resource type", func(t *testing.T) {
		_, err := r5.ParseJSONResource([]byte(`{"resourceType":"Spaceship"}`))
		if !errors.Is(err, encoding.ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("xml in wrong namespace", func(t *testing.T) {
		_, err := r5.ParseXMLResource([]byte(`<Patient xmlns="http://example.org"><active value="true"/></Patient>`))
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown xml attribute", func(t *testing.T) {
		_, err := r5.ParseXMLResource([]byte(`<Patient xmlns="http://hl7.org/fhir"><active value="true" colour="red"/></Patient>`))
		if !errors.Is(err, encoding.ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})
}

func TestEmitErrors(t *testing.T) {
	t.Run("extension invariant", func(t *testing.T) {
		p := r5.Patient{Extension: []r5.Extension{{
			Url:       "http://example.org/x",
			Value:     r5.String{Value: ptr.To("a")},
			Extension: []r5.Extension{{Url: "y", Value: r5.Boolean{Value: ptr.To(true)}}},
		}}}
		if _, err := r5.EmitJSON(p, false); !errors.Is(err, encoding.ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
		if _, err := r5.EmitXML(p, false); !errors.Is(err, encoding.ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
	})

	t.Run("choice type not allowed", func(t *testing.T) {
		p := r5.Patient{Deceased: r5.String{Value: ptr.To("yes")}}
		if _, err := r5.EmitJSON(p, false); !errors.Is(err, encoding.ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
	})

	t.Run("contained without resource", func(t *testing.T) {
		p := r5.Patient{Contained: []r5.ContainedResource{{}}}
		if _, err := r5.EmitJSON(p, false); !errors.Is(err, encoding.ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
	})
}

func TestDescriptor(t *testing.T) {
	d, ok := r5.Descriptor("Patient")
	if !ok {
		t.Fatal("expected Patient descriptor")
	}
	if d.Kind != model.KindResource || d.Base != model.BaseDomainResource {
		t.Errorf("unexpected kind %s base %s", d.Kind, d.Base)
	}

	tests := []struct {
		wireName    string
		name        string
		typeName    string
		cardinality string
	}{
		{wireName: "name", name: "name", cardinality: "0..*"},
		{wireName: "_birthDate", name: "birthDate", cardinality: "0..1"},
		{wireName: "deceased[x]", name: "deceased", cardinality: "0..1"},
		{wireName: "deceasedBoolean", name: "deceased", typeName: "boolean", cardinality: "0..1"},
		{wireName: "multipleBirthInteger", name: "multipleBirth", typeName: "integer", cardinality: "0..1"},
	}
	for _, tt := range tests {
		t.Run(tt.wireName, func(t *testing.T) {
			f, typeName, ok := d.Field(tt.wireName)
			if !ok {
				t.Fatalf("field %s not found", tt.wireName)
			}
			if f.Name != tt.name || typeName != tt.typeName || f.Cardinality() != tt.cardinality {
				t.Errorf("expected %s %q %s, got %s %q %s", tt.name, tt.typeName, tt.cardinality, f.Name, typeName, f.Cardinality())
			}
		})
	}

	if _, _, ok := d.Field("deceasedQuantity"); ok {
		t.Error("deceasedQuantity is not an allowed choice")
	}
	if _, ok := r5.Descriptor("Spaceship"); ok {
		t.Error("unexpected descriptor for Spaceship")
	}
}

func TestElement(t *testing.T) {
	p, err := r5.ParseJSON[r5.Patient](testdata.Example("patient-example.json"))
	if err != nil {
		t.Fatal(err)
	}

	if got := len(p.Children("name")); got != 3 {
		t.Errorf("expected 3 names, got %d", got)
	}
	if got := len(p.Children("name", "telecom")); got != 4 {
		t.Errorf("expected 4 names and telecoms, got %d", got)
	}
	if got := p.Children("photo"); got != nil {
		t.Errorf("expected no photo, got %v", got)
	}

	info := p.TypeInfo()
	if info.Namespace != "FHIR" || info.Name != "Patient" || !info.HasElement("birthDate") {
		t.Errorf("unexpected type info %v", info)
	}

	same, err := r5.ParseXML[r5.Patient](testdata.Example("patient-example.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if eq, ok := p.Equal(same); !eq || !ok {
		t.Error("expected the JSON and XML examples to be equal")
	}
	if eq, _ := p.Equal(r5.Patient{}); eq {
		t.Error("expected example and empty patient to differ")
	}

	if !strings.HasPrefix(p.Name[0].String(), `{"use":"official"`) {
		t.Errorf("unexpected string %s", p.Name[0])
	}
}
