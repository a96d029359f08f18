package assert

import (
	"testing"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/google/go-cmp/cmp"
)

// FHIRPathEqual compares two collections with FHIRPath equality.
// Two empty collections are equal.
func FHIRPathEqual(t *testing.T, expected, actual fhirpath.Collection) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	eq, ok, err := expected.Equal(actual)
	if err != nil || !ok || !eq {
		t.Errorf("collection mismatch (-want +got):\n%s", cmp.Diff(expected.String(), actual.String()))
	}
}
