package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/kthmin/finder"
	"github.com/kbukum/kthmin/selection"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func testConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "config.yml", `
name: kthmin
environment: staging
logging:
  level: error
  format: json
selection:
  pivot: median3
`)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	csv := writeFile(t, dir, "data.csv", "5\n3\ntext\n1\n4\n2\n")

	t.Run("plain", func(t *testing.T) {
		out, err := run(t, "--config", cfg, "find", "--path", csv, "-n", "3")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if out != "3\n" {
			t.Errorf("expected 3, got %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "--config", cfg, "find", "--path", csv, "-n", "5", "--json")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		var res finder.Result
		if err := json.Unmarshal([]byte(out), &res); err != nil {
			t.Fatalf("decode %q: %v", out, err)
		}
		if res != (finder.Result{K: 5, Value: 5, TotalCount: 5}) {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("rank out of range", func(t *testing.T) {
		_, err := run(t, "--config", cfg, "find", "--path", csv, "-n", "6")
		if err == nil || !strings.HasPrefix(err.Error(), "RANK_OUT_OF_RANGE: N must be in range from 1 to 5") {
			t.Errorf("expected RANK_OUT_OF_RANGE, got %v", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := run(t, "--config", cfg, "find", "--path", filepath.Join(dir, "nope.csv"), "-n", "1")
		if err == nil || !strings.HasPrefix(err.Error(), "SOURCE_UNAVAILABLE") {
			t.Errorf("expected SOURCE_UNAVAILABLE, got %v", err)
		}
	})

	t.Run("required flags", func(t *testing.T) {
		if _, err := run(t, "--config", cfg, "find", "--path", csv); err == nil {
			t.Error("expected an error without -n")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if info["version"] == nil || info["go_version"] == nil {
		t.Errorf("unexpected version output %v", info)
	}

	out, err = run(t, "version")
	if err != nil || !strings.HasPrefix(out, "kthmin ") {
		t.Errorf("unexpected plain version output %q (%v)", out, err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(writeFile(t, dir, "empty.yml", "name: kthmin\n"))
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Server.Port != 8080 || cfg.Selection.Pivot != string(selection.PivotLast) || cfg.Extract.Delimiter != "," {
			t.Errorf("unexpected defaults %+v", cfg)
		}
		if cfg.Telemetry.Enabled {
			t.Error("telemetry must be off by default")
		}
		if cfg.Version == "" {
			t.Error("expected version filled from build info")
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("KTHMIN_SELECTION_PIVOT", "random")
		t.Setenv("KTHMIN_SERVER_PORT", "9191")
		cfg, err := loadConfig(testConfig(t, dir))
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Selection.Pivot != "random" || cfg.Server.Port != 9191 {
			t.Errorf("expected env overrides, got pivot=%s port=%d", cfg.Selection.Pivot, cfg.Server.Port)
		}
	})

	t.Run("invalid sections reported together", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, dir, "bad.yml", `
name: kthmin
selection:
  pivot: first
server:
  port: 70000
extract:
  delimiter: ";;"
`))
		if err == nil {
			t.Fatal("expected validation error")
		}
		for _, want := range []string{"selection.pivot", "server.port", "extract.delimiter"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("expected %q in %v", want, err)
			}
		}
	})
}
