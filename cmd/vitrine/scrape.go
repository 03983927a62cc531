package main

import (
	"fmt"
	"os"

	"github.com/rmaia/vitrine"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitrine.ErrorMessage(err))
		return err
	}

	products, err := deps.Extractor.Extract(c.URL, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitrine.ErrorMessage(err))
		return err
	}

	data, err := deps.Writer.Write(products)
	if err != nil {
		if vitrine.ErrorCode(err) == vitrine.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "no products found on this page")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vitrine.ErrorMessage(err))
		}
		return err
	}

	if c.Output == "" {
		_, err = deps.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d products to %s\n", len(products), c.Output)
	return nil
}
