package config

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"ASSETS_DIR", "MANIFEST_FILE", "FONT_FILE", "RENDER_LABELS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(log.New(&bytes.Buffer{}, "", 0))
	want := Config{AssetsDir: DefaultAssetsDir}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSETS_DIR", "out/assets")
	t.Setenv("MANIFEST_FILE", "assets.yaml")
	t.Setenv("FONT_FILE", "font.ttf")
	t.Setenv("RENDER_LABELS", "true")

	cfg := Load(log.New(&bytes.Buffer{}, "", 0))
	want := Config{AssetsDir: "out/assets", ManifestFile: "assets.yaml", FontFile: "font.ttf", RenderLabels: true}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadInvalidBoolWarns(t *testing.T) {
	clearEnv(t)
	t.Setenv("RENDER_LABELS", "sometimes")

	var buf bytes.Buffer
	cfg := Load(log.New(&buf, "", 0))
	if cfg.RenderLabels {
		t.Error("RenderLabels = true, want default false")
	}
	if !strings.Contains(buf.String(), "[WARN]: invalid value for RENDER_LABELS") {
		t.Errorf("log = %q, want warning", buf.String())
	}
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSETS_DIR", "from-env")
	t.Setenv("FONT_FILE", "env.ttf")

	cfg := Load(log.New(&bytes.Buffer{}, "", 0))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	if err := fs.Parse([]string{"-d", "from-flag", "--labels", "--manifest=m.yaml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Config{AssetsDir: "from-flag", ManifestFile: "m.yaml", FontFile: "env.ttf", RenderLabels: true}
	if *cfg != want {
		t.Errorf("config = %+v, want %+v", *cfg, want)
	}
}

func TestConfigYAMLTags(t *testing.T) {
	data := []byte("assets_dir: a\nmanifest_file: m.yaml\nfont_file: f.ttf\nrender_labels: true\n")

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Config{AssetsDir: "a", ManifestFile: "m.yaml", FontFile: "f.ttf", RenderLabels: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}
