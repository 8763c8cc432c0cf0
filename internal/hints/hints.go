// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// maxListed caps how many names a hint lists.
const maxListed = 12

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for very large posts, raise --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the per-user config location when one was searched.
func ForConfigNotFound(searchedPaths []string, appName string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == appName {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) > maxListed {
		return format("available: " + strings.Join(available[:maxListed], ", ") + ", ...")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOrphanHeading returns hints for headings that skip a level above them.
func ForOrphanHeading() string {
	return format("start the outline at the TOC minimum depth or lower --toc-min-depth")
}

// ForInvalidDate returns hints for unparseable dates.
func ForInvalidDate() string {
	return format("use YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339 (2024-03-01T09:30:00Z)")
}

// ForTimeZone returns hints for unknown time zones.
func ForTimeZone() string {
	return format("use an IANA zone name such as Europe/Paris or America/New_York")
}

// ForFrontmatter returns hints for frontmatter that fails to decode.
func ForFrontmatter() string {
	return format("frontmatter must be YAML between two --- lines; quote values containing ':'")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
