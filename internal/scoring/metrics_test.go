package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantifiableTokens(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantValues []string
		wantKinds  []MetricKind
	}{
		{"Percentage", "Increased retention by 40%", []string{"40"}, []MetricKind{MetricPercent}},
		{"Percent word", "cut costs by 15 percent", []string{"15"}, []MetricKind{MetricPercent}},
		{"Currency", "managed a $2M budget", []string{"2"}, []MetricKind{MetricCurrency}},
		{"Multiplier", "achieved 3x throughput", []string{"3"}, []MetricKind{MetricMultiplier}},
		{"Plain count", "supported 1,500 users", []string{"1500"}, []MetricKind{MetricCount}},
		{"Mixed tokens", "grew revenue 25% across 12 markets", []string{"25", "12"}, []MetricKind{MetricPercent, MetricCount}},
		{"No tokens", "built a great system", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := QuantifiableTokens(tt.text)
			require.Len(t, tokens, len(tt.wantValues))
			for i, token := range tokens {
				assert.Equal(t, tt.wantValues[i], token.Value)
				assert.Equal(t, tt.wantKinds[i], token.Kind)
			}
		})
	}
}

func TestMissingMetrics(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
		missing   int
	}{
		{"Metric silently dropped", "Increased retention by 40%", "Improved retention", 1},
		{"Metric preserved verbatim", "Increased retention by 40%", "Grew retention 40% year over year", 0},
		{"Metric reworded but value kept", "Increased retention by 40%", "Drove a 40 percent retention gain", 0},
		{"Value rephrased as prose", "Increased retention by 40%", "Nearly halved churn", 1},
		{"Multiplier dropped", "Scaled ingestion 3x", "Scaled ingestion substantially", 1},
		{"One of two dropped", "Cut costs 20% saving $50k", "Cut costs 20%", 1},
		{"Identical text", "Shipped 15 features", "Shipped 15 features", 0},
		{"No metrics anywhere", "Maintained the service", "Operated the service", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, MissingMetrics(tt.original, tt.candidate), tt.missing)
		})
	}
}

func TestHasQuantifiableToken(t *testing.T) {
	assert.True(t, HasQuantifiableToken("cut latency 30%"))
	assert.False(t, HasQuantifiableToken("cut latency significantly"))
}

func TestQuantifiableTokens_PercentNotDoubleCounted(t *testing.T) {
	tokens := QuantifiableTokens("Increased retention by 40%")
	require.Len(t, tokens, 1)
	assert.Equal(t, MetricPercent, tokens[0].Kind)
}
