package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigDir(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name       string
		matteHome  string
		configHome string
		want       string
	}{
		{"default", "", "", filepath.Join(home, ".config", appName)},
		{"xdg", "", "/tmp/xdg", filepath.Join("/tmp/xdg", appName)},
		{"matte home wins", "/tmp/matte-home", "/tmp/xdg", "/tmp/matte-home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envHome, tt.matteHome)
			t.Setenv("XDG_CONFIG_HOME", tt.configHome)

			got, err := configDir()
			if err != nil {
				t.Fatalf("configDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("configDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
