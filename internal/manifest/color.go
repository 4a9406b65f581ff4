package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a fill color as written in a manifest: a color name, a hex
// string or an rgb()/rgba() expression. It is parsed when the image is
// created, not when the manifest is read.
type Color string

// UnmarshalYAML accepts a scalar or a [r, g, b] / [r, g, b, a] sequence.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = Color(node.Value)
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := node.Decode(&channels); err != nil {
			return fmt.Errorf("line %d: color channels: %w", node.Line, err)
		}
		if len(channels) != 3 && len(channels) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", node.Line, len(channels))
		}

		parts := make([]string, len(channels))
		for i, ch := range channels {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("line %d: color channel %d out of range", node.Line, ch)
			}
			parts[i] = strconv.Itoa(ch)
		}

		fn := "rgb"
		if len(channels) == 4 {
			fn = "rgba"
		}
		*c = Color(fn + "(" + strings.Join(parts, ", ") + ")")
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a channel list", node.Line)
	}
}
