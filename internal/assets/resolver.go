package assets

import "errors"

// AssetResolver looks an asset up in a chain of loaders. A blog's own
// asset directory comes first and the embedded assets last, so a blog can
// override the page template and still use the default stylesheet.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver builds the chain for customDir. An empty customDir
// leaves only the embedded loader. A customDir that is not a readable
// directory fails with ErrInvalidBasePath.
func NewAssetResolver(customDir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, fsLoader)
	}
	r.chain = append(r.chain, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle returns the first stylesheet named name along the chain.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(AssetLoader.LoadStyle, name)
}

// LoadTemplate returns the first page template named name along the chain.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(AssetLoader.LoadTemplate, name)
}

// first moves on to the next loader only when the asset is missing.
// Invalid names and read failures stop the lookup.
func (r *AssetResolver) first(load func(AssetLoader, string) (string, error), name string) (string, error) {
	var err error
	for _, l := range r.chain {
		var content string
		content, err = load(l, name)
		if err == nil {
			return content, nil
		}
		if !isNotFound(err) {
			return "", err
		}
	}
	return "", err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

var _ AssetLoader = (*AssetResolver)(nil)
