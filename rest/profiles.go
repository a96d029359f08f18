package rest

import (
	"context"
	"strings"

	"github.com/damedic/fhir-r5-go/model/r5"
)

// ProfileResolver looks up StructureDefinitions by their canonical URL.
//
// A canonical may carry a version, separated by "|".
type ProfileResolver interface {
	ResolveProfile(ctx context.Context, canonical string) (r5.StructureDefinition, error)
}

// Profiles resolves StructureDefinitions held in memory, keyed by url.
type Profiles map[string]r5.StructureDefinition

// NewProfiles indexes the given StructureDefinitions by their url.
// Definitions without url are ignored.
func NewProfiles(definitions ...r5.StructureDefinition) Profiles {
	p := make(Profiles, len(definitions))
	for _, sd := range definitions {
		if sd.Url == nil {
			continue
		}
		if url, ok := sd.Url.Get(); ok {
			p[url] = sd
		}
	}
	return p
}

func (p Profiles) ResolveProfile(_ context.Context, canonical string) (r5.StructureDefinition, error) {
	url, version, versioned := strings.Cut(canonical, "|")
	sd, ok := p[url]
	if ok && versioned {
		var v string
		if sd.Version != nil {
			v, _ = sd.Version.Get()
		}
		ok = v == version
	}
	if !ok {
		return r5.StructureDefinition{}, outcomeError("error", "not-found", "unknown profile "+canonical)
	}
	return sd, nil
}
