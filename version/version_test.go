package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func saveAndRestore() func() {
	v, c, b, bt, gv := Version, GitCommit, GitBranch, BuildTime, GoVersion
	return func() {
		Version, GitCommit, GitBranch, BuildTime, GoVersion = v, c, b, bt, gv
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version, GitCommit, GitBranch, BuildTime, GoVersion = "dev", "", "", "", ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.BuildDate.IsZero() {
		t.Error("BuildDate should fall back to now")
	}
	if info.GoVersion == "" {
		t.Error("expected go version from build info")
	}
}

func TestGetWithLinkerValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	BuildTime = "2024-01-15T10:30:00Z"
	GitCommit = "abc1234"
	GitBranch = "main"
	GoVersion = "go1.22.0"

	info := Get()
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	if info.GoVersion != "go1.22.0" {
		t.Errorf("expected 'go1.22.0', got %q", info.GoVersion)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
}

func TestGetDirtyVersionIsNotRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"
	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestApplyBuildInfo(t *testing.T) {
	info := &Info{Version: "1.0.0", IsRelease: true}
	applyBuildInfo(info, &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T12:00:00Z"},
		},
	})
	if info.GitCommit != "0123456" {
		t.Errorf("expected shortened commit, got %q", info.GitCommit)
	}
	if !info.IsDirty || info.IsRelease {
		t.Errorf("expected dirty non-release build, got %+v", info)
	}
	if info.GoVersion != "go1.26.0" || info.BuildTime != "2025-03-01T12:00:00Z" {
		t.Errorf("unexpected build info %+v", info)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("Short() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFull(t *testing.T) {
	built := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	main := Info{Version: "1.0.0", GitCommit: "abc1234", GitBranch: "main", BuildDate: built, GoVersion: "go1.26"}
	fv := main.Full()
	if !strings.HasPrefix(fv, "1.0.0-abc1234") {
		t.Errorf("unexpected full version %q", fv)
	}
	if strings.Contains(fv, "main") {
		t.Errorf("main branch should not appear in full version, got %q", fv)
	}
	if !strings.Contains(fv, "built 2024-01-15T10:30:00Z") {
		t.Errorf("expected build date, got %q", fv)
	}

	feature := Info{Version: "1.0.0", GitBranch: "feature/pivots"}
	if fv := feature.Full(); fv != "1.0.0-feature/pivots" {
		t.Errorf("expected feature branch suffix, got %q", fv)
	}
}

func TestFields(t *testing.T) {
	f := (&Info{Version: "1.0.0", GitCommit: "abc", IsDirty: true}).Fields()
	if f["version"] != "1.0.0" || f["git_commit"] != "abc" || f["dirty"] != true {
		t.Errorf("unexpected fields %v", f)
	}
}
