package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/yaml"
)

// Run executes the headings command.
func (c *HeadingsCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	format, ok := docindex.FormatFromPath(c.File)
	if !ok || format == docindex.FormatData {
		err := docindex.Errorf(docindex.EINVALID, "unsupported file type: %s", c.File)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	set := docindex.NewAnchorSet()
	var headings []docindex.Heading
	if format == docindex.FormatMarkdown {
		_, body, err := yaml.NewParser().SplitFrontmatter(content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
		if c.Write {
			fmt.Fprintln(deps.Stderr, "Note: --write only applies to HTML files")
		}
		headings = docindex.ExtractHeadings(string(body), set, docindex.AnchorOptions{})
	} else {
		raw := string(content)
		var anchored string
		anchored, headings, err = goquery.NewHeadingExtractor().EnsureAnchors(raw, set, docindex.AnchorOptions{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
		if c.Write && anchored != raw {
			if err := os.WriteFile(c.File, []byte(anchored), 0644); err != nil {
				return err
			}
		}
	}

	if len(headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}
	for _, h := range headings {
		fmt.Fprintf(deps.Stdout, "h%d  %s  %s\n", h.Level, h.ID, h.Title)
	}
	return nil
}
