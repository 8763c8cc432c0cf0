package highlight

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "numbers and ranges", input: "1,3-5,8", want: []int{1, 3, 4, 5, 8}},
		{name: "empty", input: "", want: []int{}},
		{name: "no numeric tokens", input: "a,b,-,x-y", want: []int{}},
		{name: "reversed range", input: "5-3", want: []int{3, 4, 5}},
		{name: "spaces", input: "1, 2 ,7", want: []int{1, 2, 7}},
		{name: "duplicates collapse", input: "2,1-3,2", want: []int{1, 2, 3}},
		{name: "partial garbage ignored", input: "2,3a,4-", want: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseLines(tt.input).Sorted()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLines(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseLines_BoundsHugeRanges(t *testing.T) {
	t.Parallel()

	got := ParseLines("1-999999999")
	if len(got) != maxRangeSpan+1 {
		t.Errorf("len = %d, want %d", len(got), maxRangeSpan+1)
	}
}

func TestSplitInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info     string
		wantLang string
		wantMeta string
	}{
		{info: "go", wantLang: "go"},
		{info: "go {1,3}", wantLang: "go", wantMeta: "{1,3}"},
		{info: "js{2}", wantLang: "js", wantMeta: "{2}"},
		{info: "sh caption='Run it' prompt='1'", wantLang: "sh", wantMeta: "caption='Run it' prompt='1'"},
		{info: "  python  ", wantLang: "python"},
		{info: "", wantLang: ""},
	}

	for _, tt := range tests {
		lang, meta := SplitInfo(tt.info)
		if lang != tt.wantLang || meta != tt.wantMeta {
			t.Errorf("SplitInfo(%q) = (%q, %q), want (%q, %q)", tt.info, lang, meta, tt.wantLang, tt.wantMeta)
		}
	}
}

func TestParseMeta(t *testing.T) {
	t.Parallel()

	const meta = `{1,3-4} caption='Install {deps}' prompt='1,3'`

	tests := []struct {
		name        string
		profile     Profile
		wantLines   []int
		wantCaption string
		wantPrompt  []int
	}{
		{name: "ranges", profile: ProfileRanges, wantLines: []int{1, 3, 4}, wantPrompt: []int{}},
		{name: "caption", profile: ProfileCaption, wantLines: []int{1, 3, 4}, wantCaption: "Install {deps}", wantPrompt: []int{}},
		{name: "prompt", profile: ProfilePrompt, wantLines: []int{1, 3, 4}, wantCaption: "Install {deps}", wantPrompt: []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := ParseMeta(meta, tt.profile)
			if diff := cmp.Diff(tt.wantLines, m.Lines.Sorted()); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
			if m.Caption != tt.wantCaption {
				t.Errorf("Caption = %q, want %q", m.Caption, tt.wantCaption)
			}
			if diff := cmp.Diff(tt.wantPrompt, m.Prompt.Sorted()); diff != "" {
				t.Errorf("Prompt mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMeta_DoubleQuotesAndUnknownOptions(t *testing.T) {
	t.Parallel()

	m := ParseMeta(`title="x" caption="A \"b\"" linenos {2}`, ProfilePrompt)
	if m.Caption != `A \` {
		t.Errorf("Caption = %q", m.Caption)
	}
	if !m.Lines.Has(2) || len(m.Lines) != 1 {
		t.Errorf("Lines = %v, want {2}", m.Lines.Sorted())
	}
}

func TestParseProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Profile
		wantErr bool
	}{
		{input: "", want: ProfilePrompt},
		{input: "ranges", want: ProfileRanges},
		{input: "V1", want: ProfileRanges},
		{input: "caption", want: ProfileCaption},
		{input: "v3", want: ProfilePrompt},
		{input: "chroma", want: ProfileChroma},
		{input: "v9", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseProfile(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("ParseProfile(%q) error = %v, want ErrInvalidProfile", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseProfile(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}
