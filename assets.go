package blogmark

import (
	"errors"

	"github.com/alnah/go-blogmark/internal/assets"
	"github.com/alnah/go-blogmark/internal/highlight"
)

// Asset name constants for the built-in style and template.
const (
	// DefaultStyle is the name of the built-in page stylesheet.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplate is the name of the built-in page template.
	DefaultTemplate = assets.DefaultTemplateName

	// DefaultCodeStyle is the chroma style used for code blocks.
	DefaultCodeStyle = highlight.DefaultStyle
)

// AssetLoader defines the contract for loading page styles and templates.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader returns the loader a Converter uses when WithAssetLoader is
// not given. Names are looked up under basePath first:
//   - styles/{name}.css for page styles
//   - templates/{name}.html for page templates
//
// Anything missing there comes from the embedded assets. An empty basePath
// uses the embedded assets alone. A basePath that is not a readable
// directory fails with ErrInvalidAssetPath.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, publicAssetError(err, nil)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter keeps internal/assets errors behind the public
// sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	css, err := a.resolver.LoadStyle(name)
	return css, publicAssetError(err, ErrStyleNotFound)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	tmpl, err := a.resolver.LoadTemplate(name)
	return tmpl, publicAssetError(err, ErrTemplateNotFound)
}

// publicAssetError translates an internal asset or highlight error.
// missing is reported for unknown and malformed names; callers that load
// nothing by name pass nil. Unrecognized errors pass through unchanged.
func publicAssetError(err, missing error) error {
	var public error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		public = ErrInvalidAssetPath
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, highlight.ErrStyleNotFound):
		public = ErrStyleNotFound
	case errors.Is(err, assets.ErrTemplateNotFound):
		public = ErrTemplateNotFound
	case errors.Is(err, assets.ErrInvalidAssetName) && missing != nil:
		public = missing
	default:
		return err
	}
	return &assetError{public: public, msg: err.Error()}
}

// assetError carries the internal message but unwraps only to the public
// sentinel, so callers never match internal/assets errors.
type assetError struct {
	public error
	msg    string
}

func (e *assetError) Error() string { return e.msg }

func (e *assetError) Unwrap() error { return e.public }
