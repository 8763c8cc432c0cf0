package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrUnknownCodeStyle = errors.New("unknown code style")
)

// runBuildCmd parses build flags and runs the build.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runBuild(ctx, positional, flags, env)
}

// runBuild renders every post under the input path.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger)
	}

	cfg, err := loadConfig(flags.common.config, env, logger)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	logger.Debug("discovered posts", "input", inputPath, "count", len(files))

	extraCSS, err := readCSS(flags.page.css)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, timeout, logger)
	if err != nil {
		return err
	}

	params := &renderParams{
		standalone: cfg.Page.Standalone,
		lang:       cfg.Page.Lang,
		css:        extraCSS,
		drafts:     cfg.Input.Drafts,
	}
	start := env.Now()
	results := renderBatch(ctx, conv, files, params, resolveWorkers(cfg.Build.Workers), logger)
	logger.Debug("build finished", "duration", env.Now().Sub(start).Round(time.Millisecond))

	return reportResults(results, flags.common.quiet, flags.common.verbose, env)
}

// loadConfig resolves the config file from --config or BLOGMARK_CONFIG,
// then applies environment overrides.
func loadConfig(flagConfig string, env *Environment, logger *slog.Logger) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), logger)
	envCfg := loadEnvConfig(env.Getenv, logger)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "name", name)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	// I/O flags
	if flags.io.output != "" {
		cfg.Output.DefaultDir = flags.io.output
	}
	if flags.io.workers != 0 {
		cfg.Build.Workers = flags.io.workers
	}
	if flags.io.timeout != "" {
		cfg.Build.Timeout = flags.io.timeout
	}
	if flags.io.drafts {
		cfg.Input.Drafts = true
	}

	// Page flags
	if flags.page.standalone {
		cfg.Page.Standalone = true
	}
	if flags.page.style != "" {
		cfg.Page.Style = flags.page.style
	}
	if flags.page.template != "" {
		cfg.Page.Template = flags.page.template
	}
	if flags.page.assetPath != "" {
		cfg.Assets.BasePath = flags.page.assetPath
	}
	if flags.page.lang != "" {
		cfg.Page.Lang = flags.page.lang
	}

	// Code flags
	if flags.code.style != "" {
		cfg.Code.Style = flags.code.style
	}
	if flags.code.profile != "" {
		cfg.Code.Profile = flags.code.profile
	}

	// Markup flags
	if flags.markup.tag != "" {
		cfg.Directives.Tag = flags.markup.tag
	}
	if flags.markup.clientEmbeds {
		cfg.Directives.ClientEmbeds = true
	}
	if flags.markup.tocMinDepth != 0 {
		cfg.TOC.MinDepth = flags.markup.tocMinDepth
	}
	if flags.markup.tocMaxDepth != 0 {
		cfg.TOC.MaxDepth = flags.markup.tocMaxDepth
	}
	if flags.markup.emoji {
		cfg.Markdown.Emoji = true
	}
	if flags.markup.unsafe {
		cfg.Markdown.Unsafe = true
	}
	if flags.markup.timeZone != "" {
		cfg.Dates.TimeZone = flags.markup.timeZone
	}
	if flags.markup.dateFormat != "" {
		cfg.Dates.Format = flags.markup.dateFormat
	}

	// Disable flags
	if flags.code.noLineNumbers {
		cfg.Code.LineNumbers = false
	}
	if flags.code.noLineHighlight {
		cfg.Code.LineHighlight = false
	}
	if flags.code.noLanguage {
		cfg.Code.LanguageLabel = false
	}
	if flags.code.noCaptions {
		cfg.Code.Captions = false
	}
	if flags.markup.noRewriteLinks {
		cfg.Markdown.RewriteLinks = false
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// readCSS reads the extra stylesheet given with --css.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// converterOptions translates the merged config into library options.
func converterOptions(cfg *config.Config, timeout time.Duration, logger *slog.Logger) []blogmark.Option {
	opts := []blogmark.Option{
		blogmark.WithLogger(logger),
		blogmark.WithStyle(cfg.Page.Style),
		blogmark.WithAssetPath(cfg.Assets.BasePath),
		blogmark.WithProfile(cfg.Code.Profile),
		blogmark.WithCodeStyle(cfg.Code.Style),
		blogmark.WithCodeAliases(cfg.Code.Aliases),
		blogmark.WithLineNumbers(cfg.Code.LineNumbers),
		blogmark.WithLineHighlighting(cfg.Code.LineHighlight),
		blogmark.WithLanguageLabel(cfg.Code.LanguageLabel),
		blogmark.WithCaptions(cfg.Code.Captions),
		blogmark.WithDirectiveTag(cfg.Directives.Tag),
		blogmark.WithServerEmbeds(!cfg.Directives.ClientEmbeds),
		blogmark.WithCalloutAliases(cfg.Directives.Callouts),
		blogmark.WithTOCDepth(cfg.TOC.MinDepth, cfg.TOC.MaxDepth),
		blogmark.WithEmoji(cfg.Markdown.Emoji),
		blogmark.WithUnsafe(cfg.Markdown.Unsafe),
		blogmark.WithLinkRewriting(cfg.Markdown.RewriteLinks),
		blogmark.WithTimeZone(cfg.Dates.TimeZone),
		blogmark.WithDateFormat(cfg.Dates.Format),
	}
	if cfg.Page.Template != "" {
		opts = append(opts, blogmark.WithTemplate(cfg.Page.Template))
	}
	if timeout > 0 {
		opts = append(opts, blogmark.WithTimeout(timeout))
	}
	return opts
}

// newConverter builds the shared converter. blogmark.Converter is safe for
// concurrent use, so one instance serves every worker.
func newConverter(cfg *config.Config, timeout time.Duration, logger *slog.Logger) (*blogmark.Converter, error) {
	if _, err := blogmark.CSS(cfg.Code.Style); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrInvalidSettings, ErrUnknownCodeStyle, err)
	}
	conv, err := blogmark.NewConverter(converterOptions(cfg, timeout, logger)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return conv, nil
}
