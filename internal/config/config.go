// Package config loads and validates blogmark YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/fileutil"
	"github.com/alnah/go-blogmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the per-user config directory.
const AppName = "blogmark"

// Field length limits.
const (
	MaxPathLength   = 4096
	MaxNameLength   = 100 // style, template, profile, tag names
	MaxLangLength   = 35  // BCP 47 tags stay well under this
	MaxFormatLength = 100 // date display format
	MaxAliasLength  = 50  // callout and language alias keys
	MaxWorkers      = 64
)

// Config holds all configuration for a blogmark build.
type Config struct {
	Input      InputConfig     `yaml:"input"`
	Output     OutputConfig    `yaml:"output"`
	Page       PageConfig      `yaml:"page"`
	Assets     AssetsConfig    `yaml:"assets"`
	Code       CodeConfig      `yaml:"code"`
	Directives DirectiveConfig `yaml:"directives"`
	TOC        TOCConfig       `yaml:"toc"`
	Dates      DateConfig      `yaml:"dates"`
	Markdown   MarkdownConfig  `yaml:"markdown"`
	Build      BuildConfig     `yaml:"build"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Drafts     bool   `yaml:"drafts"`     // Render posts marked draft: true
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// PageConfig defines standalone page options.
type PageConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap fragments in the page template
	Style      string `yaml:"style"`      // Page stylesheet name, path, or inline CSS
	Template   string `yaml:"template"`   // Page template name
	Lang       string `yaml:"lang"`       // <html lang>, default "en"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// CodeConfig defines code block highlighting options.
type CodeConfig struct {
	Style         string            `yaml:"style"`         // chroma style name
	Profile       string            `yaml:"profile"`       // v1, v2, chroma
	LineNumbers   bool              `yaml:"lineNumbers"`   // default true
	LineHighlight bool              `yaml:"lineHighlight"` // default true
	LanguageLabel bool              `yaml:"languageLabel"` // default true
	Captions      bool              `yaml:"captions"`      // default true
	Aliases       map[string]string `yaml:"aliases"`       // alias -> lexer name
}

// DirectiveConfig defines directive rendering options.
type DirectiveConfig struct {
	Tag          string            `yaml:"tag"`          // element for callouts, default "aside"
	ClientEmbeds bool              `yaml:"clientEmbeds"` // <lite-youtube> instead of iframes
	Callouts     map[string]string `yaml:"callouts"`     // alias -> callout kind
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	MinDepth int `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int `yaml:"maxDepth"` // 1-6, default 6
}

// DateConfig defines date handling options.
type DateConfig struct {
	TimeZone string `yaml:"timeZone"` // IANA zone for dates without offset
	Format   string `yaml:"format"`   // display format or preset
}

// MarkdownConfig defines Markdown extension options.
type MarkdownConfig struct {
	Emoji        bool `yaml:"emoji"`
	Unsafe       bool `yaml:"unsafe"`       // pass raw HTML through
	RewriteLinks bool `yaml:"rewriteLinks"` // post.md -> post.html, default true
}

// BuildConfig defines batch options.
type BuildConfig struct {
	Workers int    `yaml:"workers"` // 0 = auto
	Timeout string `yaml:"timeout"` // per-file timeout, e.g. "30s"
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers that
// construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"page.template", c.Page.Template, MaxNameLength},
		{"page.lang", c.Page.Lang, MaxLangLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"code.style", c.Code.Style, MaxNameLength},
		{"code.profile", c.Code.Profile, MaxNameLength},
		{"directives.tag", c.Directives.Tag, MaxNameLength},
		{"dates.timeZone", c.Dates.TimeZone, MaxNameLength},
		{"dates.format", c.Dates.Format, MaxFormatLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := validateAliases("code.aliases", c.Code.Aliases); err != nil {
		return err
	}
	if err := validateAliases("directives.callouts", c.Directives.Callouts); err != nil {
		return err
	}

	if err := validateDepth("toc.minDepth", c.TOC.MinDepth); err != nil {
		return err
	}
	if err := validateDepth("toc.maxDepth", c.TOC.MaxDepth); err != nil {
		return err
	}
	if c.TOC.MinDepth > c.TOC.MaxDepth {
		return fmt.Errorf("%w: toc.minDepth %d exceeds toc.maxDepth %d", ErrInvalidValue, c.TOC.MinDepth, c.TOC.MaxDepth)
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout parses Build.Timeout. An empty value returns zero.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Build.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Build.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: build.timeout %q (use a positive duration such as 30s)", ErrInvalidValue, c.Build.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateAliases(fieldName string, aliases map[string]string) error {
	for alias, target := range aliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("%w: %s entries need a name and a target", ErrInvalidValue, fieldName)
		}
		if err := validateFieldLength(fieldName+"."+alias, alias, MaxAliasLength); err != nil {
			return err
		}
	}
	return nil
}

func validateDepth(fieldName string, depth int) error {
	if depth < 1 || depth > 6 {
		return fmt.Errorf("%w: %s must be between 1 and 6, got %d", ErrInvalidValue, fieldName, depth)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// Values left out of a config file keep these defaults.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{Lang: "en"},
		Code: CodeConfig{
			LineNumbers:   true,
			LineHighlight: true,
			LanguageLabel: true,
			Captions:      true,
		},
		TOC:      TOCConfig{MinDepth: 2, MaxDepth: 6},
		Markdown: MarkdownConfig{RewriteLinks: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError reports the locations searched for a config name.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrConfigNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// os.UserConfigDir honours $XDG_CONFIG_HOME
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}
