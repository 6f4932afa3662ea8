package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cakeshop/internal/filex"
)

// Sink receives exported media and reports where it ended up.
type Sink interface {
	Put(ctx context.Context, name string, b Blob) (string, error)
}

// DirSink writes files into a local directory, creating it on first use.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (d *DirSink) Put(ctx context.Context, name string, b Blob) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir, err := filex.EnsureDir(d.Dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filex.CleanName(name))
	if err := os.WriteFile(path, b.Data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
