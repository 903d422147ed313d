package framekit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if v := cfg.BlenderBinary; v != "blender" {
		t.Fatalf("expected blender; received %s", v)
	}
	if v := len(cfg.DistributeHosts); v != 1 {
		t.Fatalf("expected 1 default host; received %d", v)
	}
	if v := cfg.DistributeHosts[0]; v != LocalHost {
		t.Fatalf("expected %s; received %s", LocalHost, v)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if v := cfg.SSHBinary; v != "ssh" {
		t.Fatalf("expected ssh; received %s", v)
	}
}

func TestLoadConfig(t *testing.T) {
	data := `
BlenderBinary = "/opt/blender/blender"
DistributeHosts = ["localhost", "render1", "render2"]
Workers = 4
`
	path := filepath.Join(t.TempDir(), "framekit.toml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if v := cfg.BlenderBinary; v != "/opt/blender/blender" {
		t.Fatalf("expected /opt/blender/blender; received %s", v)
	}
	if v := len(cfg.DistributeHosts); v != 3 {
		t.Fatalf("expected 3 hosts; received %d", v)
	}
	if v := cfg.Workers; v != 4 {
		t.Fatalf("expected 4 workers; received %d", v)
	}
	// unset fields keep their defaults
	if v := cfg.SCPBinary; v != "scp" {
		t.Fatalf("expected scp; received %s", v)
	}
}
