package directive

import (
	"fmt"
	"strings"
)

// Kind identifies the transform applied to a directive.
type Kind int

// Directive kinds.
const (
	KindUnknown Kind = iota
	KindCallout
	KindEmbed
	KindTime
	KindYouTube
	KindAttributes
	KindTOC
)

func (k Kind) String() string {
	switch k {
	case KindCallout:
		return "callout"
	case KindEmbed:
		return "embed"
	case KindTime:
		return "time"
	case KindYouTube:
		return "youtube"
	case KindAttributes:
		return "attributes"
	case KindTOC:
		return "toc"
	}
	return "unknown"
}

var builtinKinds = map[string]Kind{
	"embed":      KindEmbed,
	"quote":      KindEmbed,
	"time":       KindTime,
	"youtube":    KindYouTube,
	"attrib":     KindAttributes,
	"attributes": KindAttributes,
	"element":    KindAttributes,
	"toc":        KindTOC,
}

// CalloutKind is one of the fixed callout styles.
type CalloutKind int

// Callout kinds.
const (
	CalloutNote CalloutKind = iota
	CalloutTip
	CalloutWarning
	CalloutCaution
	CalloutImportant
	CalloutSetup
	CalloutFootnote
)

type calloutStyle struct {
	name  string
	label string
	icon  string
}

var calloutStyles = [...]calloutStyle{
	CalloutNote:      {"note", "Note", "info"},
	CalloutTip:       {"tip", "Tip", "lightbulb"},
	CalloutWarning:   {"warning", "Warning", "alert-triangle"},
	CalloutCaution:   {"caution", "Caution", "flame"},
	CalloutImportant: {"important", "Important", "message-circle-warning"},
	CalloutSetup:     {"setup", "Setup", "wrench"},
	CalloutFootnote:  {"footnote", "Footnote", "bookmark"},
}

func (k CalloutKind) String() string {
	if k < 0 || int(k) >= len(calloutStyles) {
		return fmt.Sprintf("CalloutKind(%d)", int(k))
	}
	return calloutStyles[k].name
}

// Label is the default title of the callout.
func (k CalloutKind) Label() string { return calloutStyles[k].label }

// Icon is the icon name used in the callout hint block.
func (k CalloutKind) Icon() string { return calloutStyles[k].icon }

// CalloutKinds lists every callout kind.
func CalloutKinds() []CalloutKind {
	out := make([]CalloutKind, len(calloutStyles))
	for i := range calloutStyles {
		out[i] = CalloutKind(i)
	}
	return out
}

// ParseCalloutKind returns the kind with the given canonical name.
func ParseCalloutKind(name string) (CalloutKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, s := range calloutStyles {
		if s.name == name {
			return CalloutKind(i), true
		}
	}
	return 0, false
}

// DefaultCalloutAliases maps the alternative directive names to their kinds.
func DefaultCalloutAliases() map[string]CalloutKind {
	return map[string]CalloutKind{
		"commend": CalloutTip,
		"deter":   CalloutCaution,
		"assert":  CalloutImportant,
	}
}

// registry resolves directive names. It is read-only once built.
type registry struct {
	callouts map[string]CalloutKind
}

func newRegistry(aliases map[string]CalloutKind) *registry {
	r := &registry{callouts: make(map[string]CalloutKind)}
	for _, k := range CalloutKinds() {
		r.callouts[k.String()] = k
	}
	for name, k := range DefaultCalloutAliases() {
		r.callouts[name] = k
	}
	for name, k := range aliases {
		r.callouts[strings.ToLower(name)] = k
	}
	return r
}

func (r *registry) lookup(name string) (Kind, CalloutKind) {
	name = strings.ToLower(name)
	if k, ok := builtinKinds[name]; ok {
		return k, 0
	}
	if c, ok := r.callouts[name]; ok {
		return KindCallout, c
	}
	return KindUnknown, 0
}
