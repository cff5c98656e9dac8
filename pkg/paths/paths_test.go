package paths_test

import (
	"testing"

	"github.com/arthur-debert/pkghooks/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name       string
		rootDir    string
		configDir  string
		wantRoot   string
		wantConfig string
	}{
		{"defaults", "", "", "/work", "/work/config"},
		{"custom config dir", ".", "config2", "/work", "/work/config2"},
		{"custom root dir", "app", "", "/work/app", "/work/app/config"},
		{"absolute root", "/srv/app", "etc", "/srv/app", "/srv/app/etc"},
		{"absolute config", "app", "/etc/app", "/work/app", "/etc/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paths.New("/work", tt.rootDir, tt.configDir)
			assert.Equal(t, tt.wantRoot, p.Root())
			assert.Equal(t, tt.wantConfig, p.ConfigDir())
			assert.Equal(t, tt.wantConfig+"/packages", p.PackagesDir())
			assert.Equal(t, tt.wantConfig+"/routes", p.RoutesDir())
		})
	}
}
