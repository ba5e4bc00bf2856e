package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile *WeightProfile
		wantErr bool
	}{
		{
			"Valid profile",
			&WeightProfile{Name: "ok", Dimensions: []DimensionWeight{{ID: "a", Weight: 0.6}, {ID: "b", Weight: 0.4}}},
			false,
		},
		{
			"Sum below one",
			&WeightProfile{Name: "low", Dimensions: []DimensionWeight{{ID: "a", Weight: 0.5}, {ID: "b", Weight: 0.4}}},
			true,
		},
		{
			"Sum above one",
			&WeightProfile{Name: "high", Dimensions: []DimensionWeight{{ID: "a", Weight: 0.7}, {ID: "b", Weight: 0.4}}},
			true,
		},
		{
			"Duplicate dimension",
			&WeightProfile{Name: "dup", Dimensions: []DimensionWeight{{ID: "a", Weight: 0.5}, {ID: "a", Weight: 0.5}}},
			true,
		},
		{
			"Negative weight",
			&WeightProfile{Name: "neg", Dimensions: []DimensionWeight{{ID: "a", Weight: 1.2}, {ID: "b", Weight: -0.2}}},
			true,
		},
		{
			"Missing name",
			&WeightProfile{Dimensions: []DimensionWeight{{ID: "a", Weight: 1.0}}},
			true,
		},
		{
			"Fallback dimension outside primary",
			&WeightProfile{
				Name:       "bad-fallback",
				Dimensions: []DimensionWeight{{ID: "a", Weight: 0.5}, {ID: "b", Weight: 0.5}},
				Fallback:   &WeightProfile{Name: "fb", Dimensions: []DimensionWeight{{ID: "c", Weight: 1.0}}},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisteredProfiles_WeightIntegrity(t *testing.T) {
	names := ProfileNames()
	require.Contains(t, names, ProfileBullet)
	require.Contains(t, names, ProfileHolyTrinity)
	require.Contains(t, names, ProfileLegacyTwoStage)

	for _, name := range names {
		p, err := Profile(name)
		require.NoError(t, err)

		sum := 0.0
		for _, d := range p.Dimensions {
			sum += d.Weight
		}
		assert.InDelta(t, 1.0, sum, weightTolerance, "profile %q weights must sum to 1.0", name)
	}
}

func TestRegisterProfile_RejectsDuplicates(t *testing.T) {
	p := &WeightProfile{Name: "register-once", Dimensions: []DimensionWeight{{ID: "a", Weight: 1.0}}}
	require.NoError(t, RegisterProfile(p))
	assert.Error(t, RegisterProfile(p))
}

func TestProfile_UnknownName(t *testing.T) {
	_, err := Profile("no-such-profile")
	assert.Error(t, err)
}

func TestRoundDocument_Boundary(t *testing.T) {
	// The documented rounding convention: one decimal at document level
	average := (1.0 + 2.0 + 4.0) / 3.0
	assert.InDelta(t, 2.3, RoundDocument(average), 1e-9)
	assert.InDelta(t, 2.7, RoundDocument(8.0/3.0), 1e-9)
}

func TestRoundBullet_Integer(t *testing.T) {
	assert.Equal(t, 72.0, RoundBullet(71.5))
	assert.Equal(t, 71.0, RoundBullet(71.4))
	assert.Equal(t, math.Trunc(RoundBullet(58.9)), RoundBullet(58.9))
}
