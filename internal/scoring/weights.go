// Package scoring implements the heuristic analyzer stages, the weighted
// stage aggregator, and the non-regression indicator merge.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// weightTolerance is the float tolerance applied when checking that a
// profile's weights sum to 1.0.
const weightTolerance = 1e-9

// Dimension IDs used by the registered profiles.
const (
	DimIndicators         = "indicators"
	DimATS                = "ats"
	DimRecruiterUX        = "recruiter_ux"
	DimDomainIntelligence = "domain_intelligence"

	DimCore             = "core"
	DimKeywordMatch     = "keyword_match"
	DimStructuralFormat = "structural_format"
)

// Built-in profile names.
const (
	ProfileBullet         = "bullet"
	ProfileHolyTrinity    = "holy-trinity"
	ProfileLegacyTwoStage = "legacy-two-stage"
)

// DimensionWeight binds one named dimension to its weight in a profile.
type DimensionWeight struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// WeightProfile is a named, immutable mapping from dimension to weight.
// Weights must sum to exactly 1.0 (within float tolerance); this is
// checked once at registration, not per scoring call.
//
// Fallback, when set, is the profile used instead when every dimension it
// omits is structurally unavailable (sentinel score 0). This redistributes
// the missing dimension's weight rather than counting it as a zero.
type WeightProfile struct {
	Name       string            `json:"name"`
	Dimensions []DimensionWeight `json:"dimensions"`
	Fallback   *WeightProfile    `json:"fallback,omitempty"`
}

// Validate checks the profile's weight-sum contract, including its fallback chain.
func (p *WeightProfile) Validate() error {
	if p.Name == "" {
		return &ConfigError{Message: "weight profile has no name"}
	}
	if len(p.Dimensions) == 0 {
		return &ConfigError{Message: fmt.Sprintf("weight profile %q has no dimensions", p.Name)}
	}
	sum := 0.0
	seen := make(map[string]bool, len(p.Dimensions))
	for _, d := range p.Dimensions {
		if d.Weight < 0 || d.Weight > 1 {
			return &ConfigError{Message: fmt.Sprintf("weight profile %q: dimension %q weight %v outside [0,1]", p.Name, d.ID, d.Weight)}
		}
		if seen[d.ID] {
			return &ConfigError{Message: fmt.Sprintf("weight profile %q: duplicate dimension %q", p.Name, d.ID)}
		}
		seen[d.ID] = true
		sum += d.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{Message: fmt.Sprintf("weight profile %q: weights sum to %v, want 1.0", p.Name, sum)}
	}
	if p.Fallback != nil {
		for _, d := range p.Fallback.Dimensions {
			if !seen[d.ID] {
				return &ConfigError{Message: fmt.Sprintf("weight profile %q: fallback dimension %q not present in primary profile", p.Name, d.ID)}
			}
		}
		return p.Fallback.Validate()
	}
	return nil
}

// Weight returns the weight for a dimension id, or 0 if absent.
func (p *WeightProfile) Weight(id string) float64 {
	for _, d := range p.Dimensions {
		if d.ID == id {
			return d.Weight
		}
	}
	return 0
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*WeightProfile)
)

// RegisterProfile validates and registers a weight profile by name.
// A profile whose weights do not sum to 1.0 is a programming error and is
// rejected here, once, rather than on every scoring call.
func RegisterProfile(p *WeightProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[p.Name]; exists {
		return &ConfigError{Message: fmt.Sprintf("weight profile %q already registered", p.Name)}
	}
	registry[p.Name] = p
	return nil
}

// mustRegister registers a built-in profile and panics on violation.
// Built-in profiles are compile-time constants; a failure here is a bug.
func mustRegister(p *WeightProfile) {
	if err := RegisterProfile(p); err != nil {
		panic(err)
	}
}

// Profile returns a registered profile by name.
func Profile(name string) (*WeightProfile, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return nil, &ConfigError{Message: fmt.Sprintf("unknown weight profile %q", name)}
	}
	return p, nil
}

// ProfileNames returns the names of all registered profiles, sorted.
func ProfileNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BulletProfile returns the bullet-level stage weights.
func BulletProfile() *WeightProfile {
	p, err := Profile(ProfileBullet)
	if err != nil {
		panic(err)
	}
	return p
}

// DocumentProfile returns the document-level weights with the legacy
// two-stage fallback for when keyword matching is unavailable.
func DocumentProfile() *WeightProfile {
	p, err := Profile(ProfileHolyTrinity)
	if err != nil {
		panic(err)
	}
	return p
}

func init() {
	mustRegister(&WeightProfile{
		Name: ProfileBullet,
		Dimensions: []DimensionWeight{
			{ID: DimIndicators, Weight: 0.20},
			{ID: DimATS, Weight: 0.30},
			{ID: DimRecruiterUX, Weight: 0.20},
			{ID: DimDomainIntelligence, Weight: 0.30},
		},
	})
	mustRegister(&WeightProfile{
		Name: ProfileHolyTrinity,
		Dimensions: []DimensionWeight{
			{ID: DimCore, Weight: 0.50},
			{ID: DimKeywordMatch, Weight: 0.30},
			{ID: DimStructuralFormat, Weight: 0.20},
		},
		Fallback: &WeightProfile{
			Name: "holy-trinity-fallback",
			Dimensions: []DimensionWeight{
				{ID: DimCore, Weight: 0.70},
				{ID: DimStructuralFormat, Weight: 0.30},
			},
		},
	})
	mustRegister(&WeightProfile{
		Name: ProfileLegacyTwoStage,
		Dimensions: []DimensionWeight{
			{ID: DimCore, Weight: 0.70},
			{ID: DimStructuralFormat, Weight: 0.30},
		},
	})
}
