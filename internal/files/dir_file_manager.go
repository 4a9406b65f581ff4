package files

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrInvalidName = errors.New("invalid asset name")

type dirFileManager struct {
	dir string
}

// NewDirFileManager creates dir and any missing parents.
func NewDirFileManager(dir string) (FileManager, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets dir: %w", err)
	}
	return &dirFileManager{dir: dir}, nil
}

func (fm *dirFileManager) Path(name string) string {
	return filepath.Join(fm.dir, name)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (fm *dirFileManager) Exists(name string) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}

	_, err := os.Stat(fm.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Write encodes img next to its final path and renames it into place, so an
// interrupted write never leaves a partial file behind.
func (fm *dirFileManager) Write(name string, img image.Image) error {
	if err := checkName(name); err != nil {
		return err
	}

	encode, err := EncoderFor(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(fm.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	err = encode(tmp, img)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0644)
	}
	if err == nil {
		err = os.Rename(tmpName, fm.Path(name))
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
