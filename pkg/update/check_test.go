package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		newer   bool
	}{
		{"v1.0.0", "v1.0.1", true},
		{"v1.0.0", "v2.0.0", true},
		{"1.2.3", "v1.2.3", false},
		{"v2.0.0", "v1.9.9", false},
		{"v9.0.0", "v10.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.current+"_vs_"+tt.latest, func(t *testing.T) {
			newer, err := IsNewerVersion(tt.current, tt.latest)
			assert.NoError(t, err)
			assert.Equal(t, tt.newer, newer)
		})
	}
}

func TestIsNewerVersionUnparseable(t *testing.T) {
	_, err := IsNewerVersion("dev", "v1.0.0")
	assert.Error(t, err)

	_, err = IsNewerVersion("v1.0.0", "nightly")
	assert.Error(t, err)
}
