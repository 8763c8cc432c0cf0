package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds input, output and batch flags.
type ioFlags struct {
	output  string
	workers int
	timeout string
	drafts  bool
}

// pageFlags holds standalone page flags.
type pageFlags struct {
	standalone bool
	style      string // page stylesheet name, path or CSS
	template   string
	assetPath  string
	lang       string
	css        string // extra CSS file appended to the page stylesheet
}

// codeFlags holds code block flags.
type codeFlags struct {
	style           string // chroma style
	profile         string
	noLineNumbers   bool
	noLineHighlight bool
	noLanguage      bool
	noCaptions      bool
}

// markupFlags holds directive, TOC and Markdown extension flags.
type markupFlags struct {
	tag            string
	clientEmbeds   bool
	tocMinDepth    int
	tocMaxDepth    int
	emoji          bool
	unsafe         bool
	noRewriteLinks bool
	timeZone       string
	dateFormat     string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	io     ioFlags
	page   pageFlags
	code   codeFlags
	markup markupFlags
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	style     string
	page      bool
	pageStyle string
	assetPath string
	output    string
	list      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each post)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-post timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.drafts, "drafts", false, "render posts marked draft: true")
}

// addPageFlags adds standalone page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap posts in a full HTML page")
	fs.StringVar(&f.style, "page-style", "", "page stylesheet name or file path")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.lang, "lang", "", "page language (default: en)")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to standalone pages")
}

// addCodeFlags adds code block flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.StringVar(&f.style, "style", "", "code highlighting style (see 'blogmark css --list')")
	fs.StringVar(&f.profile, "profile", "", "code fence meta profile: ranges, caption, prompt, chroma")
	fs.BoolVar(&f.noLineNumbers, "no-line-numbers", false, "hide line numbers")
	fs.BoolVar(&f.noLineHighlight, "no-line-highlight", false, "ignore {1,3-5} line highlights")
	fs.BoolVar(&f.noLanguage, "no-language", false, "hide the language label")
	fs.BoolVar(&f.noCaptions, "no-captions", false, "hide code block captions")
}

// addMarkupFlags adds directive and Markdown flags to a FlagSet.
func addMarkupFlags(fs *flag.FlagSet, f *markupFlags) {
	fs.StringVar(&f.tag, "tag", "", "element wrapping callouts")
	fs.BoolVar(&f.clientEmbeds, "client-embeds", false, "emit <lite-youtube> instead of iframes")
	fs.IntVar(&f.tocMinDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.tocMaxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 6)")
	fs.BoolVar(&f.emoji, "emoji", false, "render :shortcode: emoji")
	fs.BoolVar(&f.unsafe, "unsafe", false, "pass raw HTML through")
	fs.BoolVar(&f.noRewriteLinks, "no-rewrite-links", false, "keep links to .md files as written")
	fs.StringVar(&f.timeZone, "timezone", "", "zone for dates without offset (default: GMT)")
	fs.StringVar(&f.dateFormat, "date-format", "", "page date format or preset: iso, european, us, long")
}

// newBuildFlagSet registers every build flag on a new FlagSet.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addIOFlags(fs, &f.io)
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addCodeFlags(fs, &f.code)
	addMarkupFlags(fs, &f.markup)
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, stderr io.Writer) (*cssFlags, []string, error) {
	f := &cssFlags{}
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	fs.StringVar(&f.style, "style", "", "code highlighting style (default: github)")
	fs.BoolVar(&f.page, "page", false, "prepend the page stylesheet")
	fs.StringVar(&f.pageStyle, "page-style", "", "page stylesheet name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	fs.BoolVar(&f.list, "list", false, "list code highlighting styles")
	fs.SetOutput(stderr)
	fs.Usage = func() { printCSSUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// usageError marks a flag parsing failure. flag.ErrHelp passes through.
func usageError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
