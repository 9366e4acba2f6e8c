package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

func TestPlanSeeding(t *testing.T) {
	defaults := []types.Template{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	tests := []struct {
		name     string
		sentinel bool
		existing map[string]bool
		want     []string
	}{
		{"fresh store", false, map[string]bool{}, []string{"A", "B", "C"}},
		{"sentinel present", true, map[string]bool{}, nil},
		{"sentinel present ignores contents", true, map[string]bool{"A": true}, nil},
		{"skip taken names", false, map[string]bool{"B": true, "other": true}, []string{"A", "C"}},
		{"case sensitive", false, map[string]bool{"a": true}, []string{"A", "B", "C"}},
		{"everything taken", false, map[string]bool{"A": true, "B": true, "C": true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planSeeding(tt.sentinel, tt.existing, defaults)

			var got []string
			for _, p := range plan {
				got = append(got, p.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	want := []string{"Web Project", "School Class", "Video Project", "Graphic Design Project"}
	for i, d := range defaults {
		assert.Equal(t, want[i], d.Name)
		if assert.NotNil(t, d.Order) {
			assert.Equal(t, i+1, *d.Order)
		}
		assert.NotEmpty(t, d.Content)
	}
	assert.Len(t, defaults, 4)
}
