package manifest

// Descriptor describes one asset file to provision.
type Descriptor struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  Color  `yaml:"color"`
	Label  string `yaml:"label"`
}

type Manifest []Descriptor

// Default returns the assets an Expo mobile app project expects under its assets dir.
func Default() Manifest {
	return Manifest{
		{Name: "icon.png", Width: 1024, Height: 1024, Color: "blue", Label: "Icon"},
		{Name: "adaptive-icon.png", Width: 1024, Height: 1024, Color: "blue", Label: "Adaptive"},
		{Name: "splash.png", Width: 1242, Height: 2436, Color: "white", Label: "Splash"},
		{Name: "favicon.png", Width: 48, Height: 48, Color: "blue", Label: "Fav"},
		{Name: "logo.png", Width: 500, Height: 500, Color: "blue", Label: "Logo"},
	}
}

func (m Manifest) Names() []string {
	names := make([]string, len(m))
	for i, d := range m {
		names[i] = d.Name
	}
	return names
}
