package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// PublishMode selects how outputs are placed into the output directory.
type PublishMode string

const (
	// PublishCopy duplicates the output file.
	PublishCopy PublishMode = "copy"
	// PublishSymlink leaves a symbolic link to the staged output.
	PublishSymlink PublishMode = "symlink"
	// PublishLink hard-links the staged output.
	PublishLink PublishMode = "link"
	// PublishMove renames the staged output into the output directory.
	PublishMove PublishMode = "move"
)

// ParsePublishMode maps a configuration string to a PublishMode.
func ParsePublishMode(s string) (PublishMode, error) {
	switch m := PublishMode(s); m {
	case PublishCopy, PublishSymlink, PublishLink, PublishMove:
		return m, nil
	}
	return "", errors.Errorf("unknown publish mode %q", s)
}

// Publisher places stage outputs under OutDir, keyed by sample ID, so
// downstream consumers can correlate files back to their metadata record.
type Publisher struct {
	OutDir string
	Mode   PublishMode
}

// Publish places each src under <OutDir>/<sample ID>/, named by its basename,
// and returns the published paths in input order. Copy mode goes through the
// file abstraction; the link and move modes are local-filesystem operations.
func (p Publisher) Publish(ctx context.Context, sample Sample, srcs ...string) ([]string, error) {
	if sample.ID == "" {
		return nil, errors.New("publish: sample has no ID")
	}
	destDir := filepath.Join(p.OutDir, sample.ID)
	if err := os.MkdirAll(destDir, 0775); err != nil {
		return nil, errors.Wrap(err, "publish")
	}
	published := make([]string, 0, len(srcs))
	for _, src := range srcs {
		dest := filepath.Join(destDir, filepath.Base(src))
		if err := p.place(ctx, src, dest); err != nil {
			return nil, errors.Wrapf(err, "publish %s", src)
		}
		published = append(published, dest)
	}
	return published, nil
}

func (p Publisher) place(ctx context.Context, src, dest string) error {
	switch p.Mode {
	case PublishCopy:
		return copyFile(ctx, src, dest)
	case PublishSymlink:
		abs, err := filepath.Abs(src)
		if err != nil {
			return err
		}
		return os.Symlink(abs, dest)
	case PublishLink:
		return os.Link(src, dest)
	case PublishMove:
		return os.Rename(src, dest)
	}
	return errors.Errorf("unknown publish mode %q", p.Mode)
}

func copyFile(ctx context.Context, src, dest string) (err error) {
	var in file.File
	if in, err = file.Open(ctx, src); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	var out file.File
	if out, err = file.Create(ctx, dest); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	_, err = io.Copy(out.Writer(ctx), in.Reader(ctx))
	return err
}
