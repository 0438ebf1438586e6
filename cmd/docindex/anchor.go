package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docindex"
)

// Run executes the anchor command.
func (c *AnchorCmd) Run(deps *Dependencies) error {
	id := docindex.GenerateAnchorID(strings.Join(c.Text, " "), docindex.AnchorOptions{
		MaxLength:   c.MaxLength,
		StripDigits: c.StripDigits,
		Separator:   c.Separator,
		Prefix:      c.Prefix,
		Suffix:      c.Suffix,
	})
	fmt.Fprintln(deps.Stdout, id)
	return nil
}
