package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/goquery"
)

// Run executes the strip command.
func (c *StripCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	text, err := goquery.NewNormalizer().Normalize(string(content), docindex.NormalizeOptions{
		ExcludeSelectors: c.Exclude,
		DecodeEntities:   !c.KeepEntities,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
