package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves assets from a blog's own asset directory.
// Reads go through os.Root, so neither names nor symlinks can reach
// files outside the directory.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader checks that dir is a readable directory and returns
// a loader rooted at its resolved absolute path.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	defer func() { _ = root.Close() }()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{dir: abs}, nil
}

// LoadStyle reads {dir}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(styleKind, name)
}

// LoadTemplate reads {dir}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load(templateKind, name)
}

func (f *FilesystemLoader) load(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(f.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	rel := filepath.FromSlash(kind.path(name))
	content, err := root.ReadFile(rel)
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", kind.notFound, name)
	case f.escapes(rel):
		return "", fmt.Errorf("%w: %q resolves outside %s", ErrPathTraversal, name, f.dir)
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}

// escapes reports whether rel resolves, through symlinks, to a location
// outside the loader's directory.
func (f *FilesystemLoader) escapes(rel string) bool {
	real, err := filepath.EvalSymlinks(filepath.Join(f.dir, rel))
	if err != nil {
		return false
	}
	up, err := filepath.Rel(f.dir, real)
	if err != nil {
		return true
	}
	return up == ".." || strings.HasPrefix(up, ".."+string(filepath.Separator))
}

var _ AssetLoader = (*FilesystemLoader)(nil)
