// Package main generates markdown reference pages for every trendyol CLI
// command.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/trendyol-seller/cmd/trendyol/cmd"
)

const header = "<!-- Generated by tools/docgen. Do not edit. -->\n\n"

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	n, err := generate(cmd.Root(), *output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d CLI pages in %s/\n", n, *output)
}

// generate writes one page per command under dir and returns how many
// pages were written.
func generate(root *cobra.Command, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true

	prepend := func(string) string { return header }
	link := func(name string) string { return strings.TrimSuffix(name, filepath.Ext(name)) }
	if err := doc.GenMarkdownTreeCustom(root, dir, prepend, link); err != nil {
		return 0, fmt.Errorf("generating docs: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0, fmt.Errorf("listing generated pages: %w", err)
	}
	return len(pages), nil
}
