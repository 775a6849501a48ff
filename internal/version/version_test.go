package version

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestGetUsesLinkerValues(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	Version = "v1.2.3"
	GitCommit = "0123456789abcdef"
	BuildTime = "2024-05-18T10:00:00Z"

	info := Get()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "0123456789abcdef", info.GitCommit)
	assert.Equal(t, time.Date(2024, 5, 18, 10, 0, 0, 0, time.UTC), info.BuildTime)
}

func TestInfoString(t *testing.T) {
	testCases := []struct {
		name     string
		info     Info
		expected string
	}{
		{"bare", Info{Version: "dev", GitCommit: "unknown"}, "wordmetrics dev"},
		{"with commit", Info{Version: "v1.0.0", GitCommit: "abcdef123456"}, "wordmetrics v1.0.0 (abcdef1)"},
		{"dirty", Info{Version: "v1.0.0", GitCommit: "abc", Dirty: true}, "wordmetrics v1.0.0 (dirty)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.info.String())
		})
	}
}
