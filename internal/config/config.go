package config

import "github.com/spf13/pflag"

type Config struct {
	AssetsDir    string `yaml:"assets_dir"`
	ManifestFile string `yaml:"manifest_file"`
	FontFile     string `yaml:"font_file"`
	RenderLabels bool   `yaml:"render_labels"`
}

// BindFlags registers command-line flags backed by c. The current field
// values become the flag defaults, so flags win over the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.AssetsDir, "dir", "d", c.AssetsDir, "directory the assets are written to")
	fs.StringVarP(&c.ManifestFile, "manifest", "m", c.ManifestFile, "YAML manifest (built-in manifest when empty)")
	fs.StringVar(&c.FontFile, "font", c.FontFile, "TrueType font used for labels")
	fs.BoolVar(&c.RenderLabels, "labels", c.RenderLabels, "draw each asset's label onto it")
}
