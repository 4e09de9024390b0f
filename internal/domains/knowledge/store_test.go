package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `{
  "company": {"name": "QuickFix Plumbing", "service_area": "Greater London"},
  "services": ["Emergency call-out", "Boiler repair", "Drain unblocking"],
  "pricing": {
    "services": {
      "Emergency call-out": {"base_price": 150, "description": "Standard emergency call-out"},
      "Boiler repair": {"base_price": 220},
      "Drain unblocking": {"base_price": 95}
    },
    "travel": {"flat_fee": 20},
    "standard_callout": "Emergency call-out"
  },
  "hours": {"weekdays": "08:00-18:00", "emergency": "24/7"}
}`

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "company_knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadValidSnapshot(t *testing.T) {
	store, err := Load(writeSnapshot(t, validSnapshot))
	require.NoError(t, err)

	assert.Equal(t, []string{"company", "hours", "pricing", "services"}, store.Categories())
	assert.Contains(t, store.ContextJSON(), "QuickFix Plumbing")

	rate, ok := store.BasePrice("boiler repair")
	require.True(t, ok)
	assert.Equal(t, 220.0, rate.BasePrice)

	assert.Equal(t, 150.0, store.StandardRate().BasePrice)
	assert.Equal(t, 20.0, store.Travel().FlatFee)
}

func TestBasePriceNormalizesLookup(t *testing.T) {
	store, err := Load(writeSnapshot(t, validSnapshot))
	require.NoError(t, err)

	for _, name := range []string{"Boiler Repair", "  boiler repair  ", "BOILER REPAIR"} {
		rate, ok := store.BasePrice(name)
		require.True(t, ok, "lookup %q", name)
		assert.Equal(t, 220.0, rate.BasePrice)
	}

	_, ok := store.BasePrice("submarine welding")
	assert.False(t, ok)
}

func TestLoadRejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty object", `{}`, ErrEmptyKnowledge},
		{"no pricing", `{"company": {"name": "x"}}`, ErrMissingPricing},
		{"pricing not an object", `{"pricing": 42}`, ErrMalformedPricing},
		{"no services priced", `{"pricing": {"services": {}, "standard_callout": "x"}}`, ErrMalformedPricing},
		{
			"standard callout not priced",
			`{"pricing": {"services": {"a": {"base_price": 1}}, "standard_callout": "missing"}}`,
			ErrMalformedPricing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSnapshot(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
