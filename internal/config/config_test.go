package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	def := Default()
	if cfg.MaxRepos != def.MaxRepos {
		t.Errorf("MaxRepos = %d, want %d", cfg.MaxRepos, def.MaxRepos)
	}
	if cfg.RefreshInterval.Duration != 2*time.Second {
		t.Errorf("RefreshInterval = %v, want 2s", cfg.RefreshInterval.Duration)
	}
	if cfg.PollInterval.Duration != 60*time.Second {
		t.Errorf("PollInterval = %v, want 60s", cfg.PollInterval.Duration)
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
watch_roots = ["/home/dev/src", "/home/dev/play"]
max_repos = 5
refresh_interval = "1s"
poll_interval = "2m"
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if len(cfg.WatchRoots) != 2 || cfg.WatchRoots[0] != "/home/dev/src" {
		t.Errorf("WatchRoots = %v", cfg.WatchRoots)
	}
	if cfg.MaxRepos != 5 {
		t.Errorf("MaxRepos = %d, want 5", cfg.MaxRepos)
	}
	if cfg.RefreshInterval.Duration != time.Second {
		t.Errorf("RefreshInterval = %v, want 1s", cfg.RefreshInterval.Duration)
	}
	if cfg.PollInterval.Duration != 2*time.Minute {
		t.Errorf("PollInterval = %v, want 2m", cfg.PollInterval.Duration)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	// Unset fields keep defaults.
	if cfg.WatchInterval.Duration != 2*time.Second {
		t.Errorf("WatchInterval = %v, want default 2s", cfg.WatchInterval.Duration)
	}
}

func TestLoadFrom_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("max_repos = [[["), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Error("expected parse error to be reported")
	}
	// Caller still gets usable defaults.
	if cfg.MaxRepos != Default().MaxRepos {
		t.Errorf("fallback MaxRepos = %d, want default", cfg.MaxRepos)
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"2s", 2 * time.Second},
		{"90s", 90 * time.Second},
		{"1m30s", 90 * time.Second},
		{"1h", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var d Duration
			if err := d.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q): %v", tt.text, err)
			}
			if d.Duration != tt.want {
				t.Errorf("parsed %v, want %v", d.Duration, tt.want)
			}

			out, err := d.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			var back Duration
			if err := back.UnmarshalText(out); err != nil {
				t.Fatalf("re-parse %q: %v", out, err)
			}
			if back.Duration != tt.want {
				t.Errorf("round-trip %q -> %v, want %v", out, back.Duration, tt.want)
			}
		})
	}
}

func TestDuration_RejectsGarbage(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText accepted garbage")
	}
}
