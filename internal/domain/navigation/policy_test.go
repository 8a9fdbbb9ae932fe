package navigation_test

import (
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Resolve(t *testing.T) {
	policy := navigation.DefaultPolicy()

	cases := []struct {
		view, sub  string
		label      string
		recordable bool
	}{
		{"dashboard", "", "Dashboard", true},
		{"projects", "", "Projects", true},
		{"rfq", "", "RFQs", true},
		{"po", "", "Purchase Orders", true},
		{"reports", "", "Reports & Analytics", true},
		{"masters", "materials", "Masters - materials", true},
		{"masters", "", "Masters", false},
		{"rfq-in", "", "rfq-in", false},
		{"material-units", "", "material-units", false},
		{"", "", "", false},
		{"inventory", "", "inventory", true},
	}

	for _, tc := range cases {
		rule := policy.Resolve(tc.view, tc.sub)
		require.Equal(t, tc.label, rule.Label, "label for %q/%q", tc.view, tc.sub)
		require.Equal(t, tc.recordable, rule.Recordable, "recordable for %q/%q", tc.view, tc.sub)
	}
}

func TestEntry_SameIgnoresLabel(t *testing.T) {
	a := navigation.Entry{View: "masters", SubSection: "users", Label: "one"}
	b := navigation.Entry{View: "masters", SubSection: "users", Label: "two"}
	c := navigation.Entry{View: "masters", SubSection: "materials", Label: "one"}

	require.True(t, a.Same(b))
	require.False(t, a.Same(c))
}
