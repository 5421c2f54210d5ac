package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangePosition(t *testing.T) {
	tests := []struct {
		name            string
		current, hi, lo float64
		want            float64
		wantErr         bool
	}{
		{"at low", 10, 20, 10, 0, false},
		{"at high", 20, 20, 10, 1, false},
		{"middle", 15, 20, 10, 0.5, false},
		{"flat range", 10, 10, 10, 0.5, false},
		{"above range clamps", 25, 20, 10, 1, false},
		{"below range clamps", 5, 20, 10, 0, false},
		{"inverted range", 15, 10, 20, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RangePosition(tt.current, tt.hi, tt.lo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}
