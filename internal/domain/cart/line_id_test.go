package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveLineID_Deterministic(t *testing.T) {
	first := DeriveLineID("pizza", "large", []string{"olives", "cheese"}, "no onions")
	second := DeriveLineID("pizza", "large", []string{"olives", "cheese"}, "no onions")

	assert.Equal(t, first, second)
	assert.Len(t, first, lineIDBytes*2)
}

func TestDeriveLineID_CollapsesEquivalentSelections(t *testing.T) {
	base := DeriveLineID("pizza", "large", []string{"cheese", "olives"}, "no onions")

	assert.Equal(t, base, DeriveLineID("pizza", "large", []string{"olives", "cheese"}, "no onions"), "add-on order")
	assert.Equal(t, base, DeriveLineID("pizza", "large", []string{"olives", "cheese", "olives"}, "no onions"), "duplicate add-on")
	assert.Equal(t, base, DeriveLineID("pizza", "large", []string{"cheese", " olives ", ""}, "  no onions\n"), "whitespace")
}

func TestDeriveLineID_DistinguishesConfigurations(t *testing.T) {
	base := DeriveLineID("pizza", "large", []string{"cheese"}, "")

	others := map[string]string{
		"product":   DeriveLineID("pasta", "large", []string{"cheese"}, ""),
		"variation": DeriveLineID("pizza", "small", []string{"cheese"}, ""),
		"add-ons":   DeriveLineID("pizza", "large", nil, ""),
		"note":      DeriveLineID("pizza", "large", []string{"cheese"}, "extra crispy"),
	}

	for name, other := range others {
		assert.NotEqual(t, base, other, name)
	}
}

func TestDeriveLineID_FieldBoundariesMatter(t *testing.T) {
	assert.NotEqual(t,
		DeriveLineID("ab", "c", nil, ""),
		DeriveLineID("a", "bc", nil, ""),
	)
	assert.NotEqual(t,
		DeriveLineID("p", "v", []string{"x"}, ""),
		DeriveLineID("p", "v", nil, "x"),
	)
}

func TestNormalizeAddOnIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, NormalizeAddOnIDs([]string{"c", "a", " b", "a", ""}))
	assert.Empty(t, NormalizeAddOnIDs(nil))
}
