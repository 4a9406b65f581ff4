package files

import (
	"image"
)

// FileManager is the asset directory as seen by the provisioner.
type FileManager interface {
	Exists(name string) (bool, error)
	Write(name string, img image.Image) error
	Path(name string) string
}
