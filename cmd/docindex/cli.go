package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log per-document details"`

	Build    BuildCmd    `cmd:"" help:"Build a search index from a directory of documents"`
	Anchor   AnchorCmd   `cmd:"" help:"Print the anchor id generated for text"`
	Headings HeadingsCmd `cmd:"" help:"List the anchored headings of a document"`
	Strip    StripCmd    `cmd:"" help:"Print the plain text of an HTML document"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dir         string   `arg:"" optional:"" default:"." type:"existingdir" help:"Source directory"`
	Output      string   `short:"o" help:"Output directory (defaults to the source directory)"`
	Config      string   `short:"c" type:"existingfile" help:"YAML config file (defaults to docindex.yaml in the source directory, if present)"`
	Level       []string `short:"l" name:"level" help:"Index levels to produce (repeatable): page, section, component"`
	Exclude     []string `short:"x" name:"exclude" help:"Exclude files matching a doublestar pattern (repeatable)"`
	Concurrency int      `help:"Concurrent document limit"`
	ExtractMain bool     `help:"Strip page boilerplate from HTML sources before indexing"`
	StripChrome bool     `help:"Remove documentation framework navigation from HTML sources"`
}

// AnchorCmd is the "anchor" subcommand.
type AnchorCmd struct {
	Text        []string `arg:"" help:"Heading text"`
	MaxLength   int      `help:"Maximum id length" default:"50"`
	Separator   string   `help:"Word separator" default:"-"`
	Prefix      string   `help:"Prefix joined to the id with the separator"`
	Suffix      string   `help:"Suffix joined to the id with the separator"`
	StripDigits bool     `help:"Remove digits from the id"`
}

// HeadingsCmd is the "headings" subcommand.
type HeadingsCmd struct {
	File  string `arg:"" type:"existingfile" help:"HTML or Markdown file"`
	Write bool   `short:"w" help:"Write generated ids back into an HTML file"`
}

// StripCmd is the "strip" subcommand.
type StripCmd struct {
	File         string   `arg:"" type:"existingfile" help:"HTML file"`
	Exclude      []string `short:"x" name:"exclude" help:"Remove elements matching a CSS selector (repeatable)"`
	KeepEntities bool     `help:"Leave named entities undecoded"`
}
