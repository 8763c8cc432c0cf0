package assets

// DefaultStyleName is the name of the built-in page stylesheet.
const DefaultStyleName = "default"

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "page"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the embedded loader.
// The name must not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
