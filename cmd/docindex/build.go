package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/htmltomarkdown"
	"github.com/fwojciec/docindex/indexer"
	"github.com/fwojciec/docindex/markdown"
	dislog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/trafilatura"
	"github.com/fwojciec/docindex/yaml"
)

// DefaultConfigFile is looked up in the source directory when no config
// file is given.
const DefaultConfigFile = "docindex.yaml"

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg, configPath, err := c.loadConfig()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	outDir := c.Output
	if outDir == "" {
		outDir = c.Dir
	}

	parser := yaml.NewParser()
	source := fs.NewSource(c.Dir, parser)
	source.Include = cfg.Include
	// The index and the config file are never documents themselves.
	source.Exclude = append(append([]string(nil), cfg.Exclude...), sourcePattern(c.Dir, filepath.Join(outDir, cfg.Output))...)
	if configPath != "" {
		source.Exclude = append(source.Exclude, sourcePattern(c.Dir, configPath)...)
	}
	source.Logger = deps.Logger

	assembler := &indexer.Assembler{
		Normalizer: goquery.NewNormalizer(),
		Headings:   goquery.NewHeadingExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Renderer:   markdown.NewRenderer(),
		Extractor:  trafilatura.NewExtractor(),
		Chrome:     goquery.NewDefaultRegistry(),
		Config:     cfg,
		Logger:     deps.Logger,
	}

	ix := &indexer.Indexer{
		Source:      dislog.NewLoggingSource(source, deps.Logger),
		Assembler:   dislog.NewLoggingAssembler(assembler, deps.Logger),
		Writer:      dislog.NewLoggingWriter(fs.NewWriter(outDir, cfg.Output), deps.Logger),
		Concurrency: cfg.Concurrency,
		Generator:   cfg.Generator,
		Consumer:    cfg.Consumer,
	}

	res, err := ix.Run(deps.Ctx, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d entries from %d documents\n", res.Index.TotalEntries, res.Documents)
	for _, t := range []docindex.EntryType{docindex.EntryPage, docindex.EntrySection, docindex.EntryComponent} {
		if n := res.Index.Stats.EntriesByType[string(t)]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %-9s %d\n", t, n)
		}
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d bytes, xxhash %s)\n", res.Write.Path, res.Write.Bytes, res.Write.Checksum)
	return nil
}

// loadConfig merges the config file over the defaults and applies flags.
// It also returns the path of the config file it read, if any.
func (c *BuildCmd) loadConfig() (*docindex.Config, string, error) {
	path := c.Config
	if path == "" {
		candidate := filepath.Join(c.Dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := docindex.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = yaml.LoadConfig(path); err != nil {
			return nil, "", err
		}
	}

	if len(c.Level) > 0 {
		cfg.Levels = cfg.Levels[:0]
		for _, l := range c.Level {
			for _, part := range strings.Split(l, ",") {
				if part = strings.TrimSpace(part); part != "" {
					cfg.Levels = append(cfg.Levels, docindex.EntryType(part))
				}
			}
		}
	}
	cfg.Exclude = append(cfg.Exclude, c.Exclude...)
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.ExtractMain {
		cfg.ExtractMain = true
	}
	if c.StripChrome {
		cfg.StripChrome = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if len(cfg.Levels) == 0 {
		return nil, "", docindex.Errorf(docindex.EINVALID, "at least one index level required")
	}
	return cfg, path, nil
}

// sourcePattern returns a pattern matching path when it lies inside the
// source directory, and nothing otherwise.
func sourcePattern(srcDir, path string) []string {
	src, err := filepath.Abs(srcDir)
	if err != nil {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(src, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return []string{filepath.ToSlash(rel)}
}
