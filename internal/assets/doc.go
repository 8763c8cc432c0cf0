// Package assets provides the CSS styles and page template used to wrap
// rendered posts into standalone HTML pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset
// is not found, so a blog can override the page template while keeping the
// default stylesheet.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// # Security
//
// Asset names are limited to letters, digits, '-' and '_'. FilesystemLoader
// reads through os.Root and reports ErrPathTraversal for symlinks that
// point outside the asset directory.
package assets
