package services

import (
	"context"
	"fmt"
	"io"

	"assetgen/internal/files"
	"assetgen/internal/image"
	"assetgen/internal/manifest"
)

type Action int

const (
	ActionCreated Action = iota
	ActionSkipped
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionSkipped:
		return "skipped"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

type Result struct {
	Name   string
	Path   string
	Action Action
}

// Report lists one Result per processed asset, in manifest order.
type Report []Result

func (r Report) Created() []string { return r.names(ActionCreated) }
func (r Report) Skipped() []string { return r.names(ActionSkipped) }

func (r Report) names(a Action) []string {
	var out []string
	for _, res := range r {
		if res.Action == a {
			out = append(out, res.Name)
		}
	}
	return out
}

type Provisioner struct {
	processor *image.Processor
	out       io.Writer
	openDir   func(dir string) (files.FileManager, error)
}

func NewProvisioner(processor *image.Processor, out io.Writer) *Provisioner {
	if out == nil {
		out = io.Discard
	}
	return &Provisioner{
		processor: processor,
		out:       out,
		openDir:   files.NewDirFileManager,
	}
}

// EnsureAssets creates every asset of m that does not exist yet in
// targetDir. Existing files are never touched, whatever their content.
// The first error stops the run; the report covers the assets handled
// before it.
func (p *Provisioner) EnsureAssets(ctx context.Context, m manifest.Manifest, targetDir string) (Report, error) {
	dir, err := p.openDir(targetDir)
	if err != nil {
		return nil, err
	}

	report := make(Report, 0, len(m))
	for _, d := range m {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		exists, err := dir.Exists(d.Name)
		if err != nil {
			return report, fmt.Errorf("check %s: %w", d.Name, err)
		}
		if exists {
			fmt.Fprintf(p.out, "Skipping %s, already exists\n", d.Name)
			report = append(report, Result{Name: d.Name, Path: dir.Path(d.Name), Action: ActionSkipped})
			continue
		}

		if err := p.create(dir, d); err != nil {
			return report, fmt.Errorf("create %s: %w", d.Name, err)
		}
		fmt.Fprintf(p.out, "Created %s\n", d.Name)
		report = append(report, Result{Name: d.Name, Path: dir.Path(d.Name), Action: ActionCreated})
	}

	return report, nil
}

func (p *Provisioner) create(dir files.FileManager, d manifest.Descriptor) error {
	fill, err := image.ParseColor(string(d.Color))
	if err != nil {
		return err
	}

	img, err := p.processor.Render(d.Width, d.Height, fill, d.Label)
	if err != nil {
		return err
	}

	return dir.Write(d.Name, img)
}
