package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/jaundice"
)

// Run executes the rate command.
func (c *RateCmd) Run(deps *Dependencies) error {
	results, err := deps.Analyzer.AnalyzeBatch(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jaundice.ErrorMessage(err))
		return err
	}

	printResults(deps.Stdout, results)
	return nil
}

// printResults writes one block per analyzed URL. Score fields are shown
// only for articles that went through the whole pipeline.
func printResults(w io.Writer, results []jaundice.Analysis) {
	for _, r := range results {
		fmt.Fprintf(w, "URL: %s\n", r.URL)
		fmt.Fprintf(w, "Status: %s\n", r.Status)
		if r.Rate != nil {
			fmt.Fprintf(w, "Rating: %.2f\n", *r.Rate)
		}
		if r.WordCount != nil {
			fmt.Fprintf(w, "Words: %d\n", *r.WordCount)
		}
		if r.ProcessingTimeMS != nil {
			fmt.Fprintf(w, "Analysis took: %.2f ms\n", *r.ProcessingTimeMS)
		}
		fmt.Fprintln(w)
	}
}
