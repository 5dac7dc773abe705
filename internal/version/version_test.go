package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDev(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	tests := []struct {
		version  string
		expected bool
	}{
		{"dev", true},
		{"1.0.0", false},
		{"v1.2.3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			assert.Equal(t, tt.expected, IsDev())
		})
	}
}

func TestFull(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "dev"
	assert.Equal(t, "tasklist version dev (built from source)", Full())

	Version = "1.2.3"
	assert.Equal(t, "tasklist version 1.2.3", Full())
}

func TestInfo(t *testing.T) {
	original, commit := Version, Commit
	defer func() { Version, Commit = original, commit }()

	Version, Commit = "0.3.0", "abc123"
	info := Info()
	assert.Equal(t, "0.3.0", info["version"])
	assert.Equal(t, "abc123", info["commit"])
	assert.Contains(t, info, "date")
}
