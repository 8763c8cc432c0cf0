package directive

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Attributes
		n     int
		ok    bool
	}{
		{
			name:  "empty block",
			input: "{}",
			want:  nil,
			n:     2,
			ok:    true,
		},
		{
			name:  "all forms",
			input: `{a=1 b="two words" c='x' .p .q #i flag}`,
			want: Attributes{
				{"a", "1"},
				{"b", "two words"},
				{"c", "x"},
				{"class", "p q"},
				{"id", "i"},
				{"flag", ""},
			},
			n:  39,
			ok: true,
		},
		{
			name:  "class attribute joins shorthand classes",
			input: `{.a class="b c"}`,
			want:  Attributes{{"class", "a b c"}},
			n:     16,
			ok:    true,
		},
		{
			name:  "repeated key keeps first position last value",
			input: `{k=1 j=2 k=3}`,
			want:  Attributes{{"k", "3"}, {"j", "2"}},
			n:     13,
			ok:    true,
		},
		{
			name:  "trailing text is not consumed",
			input: `{x=1} rest`,
			want:  Attributes{{"x", "1"}},
			n:     5,
			ok:    true,
		},
		{
			name:  "brace inside quotes",
			input: `{t="a}b"}`,
			want:  Attributes{{"t", "a}b"}},
			n:     9,
			ok:    true,
		},
		{name: "unclosed block", input: `{a=1`, ok: false},
		{name: "unclosed quote", input: `{a="x}`, ok: false},
		{name: "empty class", input: `{. x}`, ok: false},
		{name: "newline", input: "{a=1\n}", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, n, ok := scanAttributes([]byte(tt.input))
			if ok != tt.ok {
				t.Fatalf("scanAttributes(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if n != tt.n {
				t.Errorf("scanAttributes(%q) consumed %d bytes, want %d", tt.input, n, tt.n)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scanAttributes(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestScanHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantLabel string
		hasLabel  bool
		hasAttrs  bool
		n         int
		ok        bool
	}{
		{name: "name only", input: "note", wantName: "note", n: 4, ok: true},
		{name: "label", input: "youtube[My video]", wantName: "youtube", wantLabel: "My video", hasLabel: true, n: 17, ok: true},
		{name: "nested brackets", input: "x[a [b] c]", wantName: "x", wantLabel: "a [b] c", hasLabel: true, n: 10, ok: true},
		{name: "label and attributes", input: "time[2024]{tz=UTC}", wantName: "time", wantLabel: "2024", hasLabel: true, hasAttrs: true, n: 18, ok: true},
		{name: "stops at other text", input: "note: more", wantName: "note", n: 4, ok: true},
		{name: "must start with a letter", input: "1abc", ok: false},
		{name: "unclosed label", input: "x[abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, n, ok := scanHeader([]byte(tt.input))
			if ok != tt.ok {
				t.Fatalf("scanHeader(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if h.name != tt.wantName || h.label != tt.wantLabel || h.hasLabel != tt.hasLabel || h.hasAttrs != tt.hasAttrs || n != tt.n {
				t.Errorf("scanHeader(%q) = {name:%q label:%q hasLabel:%v hasAttrs:%v} %d, want {name:%q label:%q hasLabel:%v hasAttrs:%v} %d",
					tt.input, h.name, h.label, h.hasLabel, h.hasAttrs, n,
					tt.wantName, tt.wantLabel, tt.hasLabel, tt.hasAttrs, tt.n)
			}
		})
	}
}

func TestNewHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tag     string
		attrs   Attributes
		wantErr error
	}{
		{name: "simple", tag: "section", attrs: Attributes{{"class", "x"}}},
		{name: "custom element", tag: "lite-youtube"},
		{name: "alpine attribute", tag: "button", attrs: Attributes{{"x-on:click", "open = !open"}}},
		{name: "empty tag", tag: "", wantErr: ErrInvalidTag},
		{name: "tag with space", tag: "bad tag", wantErr: ErrInvalidTag},
		{name: "tag starting with digit", tag: "1h", wantErr: ErrInvalidTag},
		{name: "script injection", tag: "a><script", wantErr: ErrInvalidTag},
		{name: "attribute with quote", tag: "div", attrs: Attributes{{`on"x`, ""}}, wantErr: ErrInvalidAttribute},
		{name: "attribute with space", tag: "div", attrs: Attributes{{"a b", ""}}, wantErr: ErrInvalidAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHint(tt.tag, tt.attrs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewHint(%q) error = %v, want %v", tt.tag, err, tt.wantErr)
				}
				if h != nil {
					t.Errorf("NewHint(%q) returned a hint with an error", tt.tag)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHint(%q) unexpected error: %v", tt.tag, err)
			}
			if h.Tag != tt.tag {
				t.Errorf("NewHint(%q).Tag = %q", tt.tag, h.Tag)
			}
		})
	}
}

func TestAttributes_Helpers(t *testing.T) {
	t.Parallel()

	a := Attributes{{"id", "x"}, {"title", "T"}}
	a.AddClass("one")
	a.AddClass("two")
	a.Set("id", "y")

	want := Attributes{{"id", "y"}, {"title", "T"}, {"class", "one two"}}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if got := a.Without("title", "class"); !cmp.Equal(got, Attributes{{"id", "y"}}) {
		t.Errorf("Without() = %v", got)
	}
	if got := a.Missing("id", "src", "title", "author"); !cmp.Equal(got, []string{"src", "author"}) {
		t.Errorf("Missing() = %v", got)
	}
}
