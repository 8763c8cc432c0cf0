package main

import (
	"fmt"
	"os"

	"github.com/alnah/go-blogmark"
)

// runCSSCmd prints the code highlighting stylesheet, optionally preceded by
// the page stylesheet.
func runCSSCmd(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: css takes no arguments, got %q", ErrUsage, positional[0])
	}

	if flags.list {
		for _, name := range blogmark.CodeStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	css, err := buildCSS(flags)
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Fprint(env.Stdout, css)
		return nil
	}
	// #nosec G306 -- stylesheets are meant to be readable
	if err := os.WriteFile(flags.output, []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

func buildCSS(flags *cssFlags) (string, error) {
	css, err := blogmark.CSS(flags.style)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrInvalidSettings, ErrUnknownCodeStyle, err)
	}
	if !flags.page {
		return css, nil
	}

	conv, err := blogmark.NewConverter(
		blogmark.WithStyle(flags.pageStyle),
		blogmark.WithCodeStyle(flags.style),
		blogmark.WithAssetPath(flags.assetPath),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return conv.Stylesheet(), nil
}
