package highlight

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidProfile is returned for an unknown meta profile name.
var ErrInvalidProfile = errors.New("invalid highlight profile")

// Profile selects which fence meta options are understood.
type Profile int

// Meta profiles, oldest first.
const (
	// ProfileRanges understands line ranges only: {1,3-5}.
	ProfileRanges Profile = iota + 1
	// ProfileCaption adds caption='...'.
	ProfileCaption
	// ProfilePrompt adds prompt='1,3-4'.
	ProfilePrompt
	// ProfileChroma hands fenced code to goldmark-highlighting.
	ProfileChroma
)

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = ProfilePrompt

var profileNames = map[string]Profile{
	"ranges":  ProfileRanges,
	"v1":      ProfileRanges,
	"caption": ProfileCaption,
	"v2":      ProfileCaption,
	"prompt":  ProfilePrompt,
	"v3":      ProfilePrompt,
	"chroma":  ProfileChroma,
}

// ParseProfile resolves a profile by name or version. Empty means DefaultProfile.
func ParseProfile(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultProfile, nil
	}
	p, ok := profileNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: ranges, caption, prompt, chroma)", ErrInvalidProfile, name)
	}
	return p, nil
}

func (p Profile) String() string {
	switch p {
	case ProfileRanges:
		return "ranges"
	case ProfileCaption:
		return "caption"
	case ProfilePrompt:
		return "prompt"
	case ProfileChroma:
		return "chroma"
	}
	return "Profile(" + strconv.Itoa(int(p)) + ")"
}

// LineSet is a set of 1-based line numbers.
type LineSet map[int]struct{}

// Has reports whether line n is in the set.
func (s LineSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the line numbers in ascending order.
func (s LineSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// maxRangeSpan bounds the size of a single range such as 1-99999999.
const maxRangeSpan = 10000

var rangeToken = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)

// ParseLines parses a comma separated list of line numbers and ranges.
// Tokens that are not a number or a range are ignored. Reversed ranges
// are swapped.
func ParseLines(s string) LineSet {
	set := LineSet{}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, tok := range fields {
		m := rangeToken.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		from, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		to := from
		if m[2] != "" {
			if to, err = strconv.Atoi(m[2]); err != nil {
				continue
			}
		}
		if from > to {
			from, to = to, from
		}
		if to-from > maxRangeSpan {
			to = from + maxRangeSpan
		}
		for n := from; n <= to; n++ {
			set[n] = struct{}{}
		}
	}
	return set
}

// Meta is the parsed metadata of a fenced code block.
type Meta struct {
	Language string
	Lines    LineSet
	Caption  string
	Prompt   LineSet
}

var (
	captionOption = regexp.MustCompile(`\bcaption=(?:'([^']*)'|"([^"]*)")`)
	promptOption  = regexp.MustCompile(`\bprompt=(?:'([^']*)'|"([^"]*)")`)
	rangeBlock    = regexp.MustCompile(`\{([^}]*)\}`)
)

// SplitInfo splits a fence info string into its language and the rest.
// The language ends at the first whitespace or '{'.
func SplitInfo(info string) (language, meta string) {
	info = strings.TrimSpace(info)
	i := strings.IndexFunc(info, func(r rune) bool { return r == '{' || r == ' ' || r == '\t' })
	if i < 0 {
		return info, ""
	}
	return info[:i], strings.TrimSpace(info[i:])
}

// ParseMeta reads the options of meta understood by profile p.
// Unknown options are ignored.
func ParseMeta(meta string, p Profile) Meta {
	m := Meta{Lines: LineSet{}, Prompt: LineSet{}}
	if p >= ProfileCaption {
		if v, ok := quotedOption(captionOption, meta); ok {
			m.Caption = v
		}
	}
	if p >= ProfilePrompt {
		if v, ok := quotedOption(promptOption, meta); ok {
			m.Prompt = ParseLines(v)
		}
	}
	rest := captionOption.ReplaceAllString(meta, "")
	rest = promptOption.ReplaceAllString(rest, "")
	if match := rangeBlock.FindStringSubmatch(rest); match != nil {
		m.Lines = ParseLines(match[1])
	}
	return m
}

func quotedOption(re *regexp.Regexp, meta string) (string, bool) {
	match := re.FindStringSubmatch(meta)
	if match == nil {
		return "", false
	}
	if match[1] != "" {
		return match[1], true
	}
	return match[2], true
}
