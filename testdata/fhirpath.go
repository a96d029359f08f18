package testdata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/rs/zerolog/log"
)

const fhirPathTestsFile = "fhirpath/tests-fhir-r5.xml"

// GetFHIRPathTests loads the FHIRPath test suite, with the input resources of the tests decoded.
func GetFHIRPathTests() FHIRPathTests {
	testsXML, err := files.ReadFile(fhirPathTestsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("reading fhirpath tests")
	}

	var tests FHIRPathTests
	if err := xml.NewDecoder(bytes.NewReader(testsXML)).Decode(&tests); err != nil {
		log.Fatal().Err(err).Msg("decoding fhirpath tests")
	}

	inputs := map[string]model.Resource{}
	for _, g := range tests.Groups {
		for j, t := range g.Tests {
			for k := range t.Output {
				t.Output[k].inferTypeFromValue()
			}
			if strings.TrimSpace(t.InputFile) == "" {
				continue
			}
			res, ok := inputs[t.InputFile]
			if !ok {
				res = decodeInputResource(t.InputFile)
				inputs[t.InputFile] = res
			}
			t.InputResource = res
			g.Tests[j] = t
		}
	}
	return tests
}

func decodeInputResource(filename string) model.Resource {
	data := Example(filename)

	var (
		res model.Resource
		err error
	)
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		res, err = r5.ParseJSONResource(data)
	default:
		res, err = r5.ParseXMLResource(data)
	}
	if err != nil {
		log.Fatal().Err(err).Str("input", filename).Msg("decoding fhirpath test input")
	}
	return res
}

type FHIRPathTests struct {
	Name        string               `xml:"name,attr"`
	Description string               `xml:"description,attr"`
	Groups      []*FHIRPathTestGroup `xml:"group"`
}

type FHIRPathTestGroup struct {
	Name        string         `xml:"name,attr"`
	Description string         `xml:"description,attr"`
	Tests       []FHIRPathTest `xml:"test"`
}

type FHIRPathTest struct {
	Name          string `xml:"name,attr"`
	Description   string `xml:"description,attr"`
	InputFile     string `xml:"inputfile,attr"`
	InputResource model.Resource
	Predicate     bool                   `xml:"predicate,attr"`
	Expression    FHIRPathTestExpression `xml:"expression"`
	Output        []FHIRPathTestOutput   `xml:"output"`
}

// OutputCollection returns the expected result as System values.
func (t FHIRPathTest) OutputCollection() (fhirpath.Collection, error) {
	var c fhirpath.Collection
	for _, o := range t.Output {
		e, err := o.Element()
		if err != nil {
			return nil, fmt.Errorf("output of %s: %w", t.Name, err)
		}
		c = append(c, e)
	}
	return c, nil
}

type FHIRPathTestExpression struct {
	// Invalid is "syntax" for expressions which must not parse,
	// "semantic" or "execution" for expressions which must fail evaluation.
	Invalid    string `xml:"invalid,attr"`
	Expression string `xml:",chardata"`
}

type FHIRPathTestOutput struct {
	Type   string `xml:"type,attr"`
	Output string `xml:",chardata"`
}

func (o *FHIRPathTestOutput) inferTypeFromValue() {
	if o.Type != "" {
		return
	}

	value := strings.TrimSpace(o.Output)
	switch {
	case value == "":
		return
	case strings.HasPrefix(value, "@T"):
		o.Type = "time"
	case strings.HasPrefix(value, "@") && strings.Contains(value, "T"):
		o.Type = "dateTime"
	case strings.HasPrefix(value, "@"):
		o.Type = "date"
	case value == "true" || value == "false":
		o.Type = "boolean"
	default:
		if _, err := strconv.Atoi(value); err == nil {
			o.Type = "integer"
		} else if _, _, err := apd.NewFromString(value); err == nil {
			o.Type = "decimal"
		} else {
			o.Type = "string"
		}
	}
}

// Element converts the output to its System value.
func (o FHIRPathTestOutput) Element() (fhirpath.Element, error) {
	switch o.Type {
	case "boolean":
		b, err := strconv.ParseBool(o.Output)
		return fhirpath.Boolean(b), err
	case "string", "code", "id", "uri":
		return fhirpath.String(o.Output), nil
	case "integer":
		i, err := strconv.ParseInt(o.Output, 10, 32)
		return fhirpath.Integer(i), err
	case "decimal":
		d, _, err := apd.NewFromString(o.Output)
		return fhirpath.Decimal{Value: d}, err
	case "date":
		return fhirpath.ParseDate(o.Output)
	case "time":
		return fhirpath.ParseTime(o.Output)
	case "dateTime":
		return fhirpath.ParseDateTime(o.Output)
	}
	return nil, fmt.Errorf("invalid output type: %s", o.Type)
}
