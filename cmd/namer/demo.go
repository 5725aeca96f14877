package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namer/pkg/namer"
)

type demoStep struct {
	title string
	opts  []namer.Option
	find  bool
}

var demoSteps = []demoStep{
	{title: "Generate 10 names"},
	{title: "Generate 5 names", opts: []namer.Option{namer.WithCount(5)}},
	{title: "Generate 5 names with custom name prefix", opts: []namer.Option{
		namer.WithCount(5), namer.WithNamePrefix("J"), namer.WithNameSuffix("n"),
	}},
	{title: "Generate 5 names with custom surname prefix", opts: []namer.Option{
		namer.WithCount(5), namer.WithSurnamePrefix("B"), namer.WithSurnameSuffix("g"),
	}},
	{title: "Generate 5 names with custom name and surname prefix", opts: []namer.Option{
		namer.WithCount(5), namer.WithNamePrefix("Ev"), namer.WithNameSuffix("n"),
		namer.WithSurnamePrefix("Na"), namer.WithSurnameSuffix("lo"),
	}},
	{title: "Find first names", find: true, opts: []namer.Option{namer.WithNamePrefix("Mic")}},
}

func newDemoCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every gender with a set of sample queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), appFn().composer)
		},
	}
}

// runDemo keeps going after a failed step so one empty filter does not hide
// the rest of the output.
func runDemo(ctx context.Context, w io.Writer, c *namer.Composer) error {
	var firstErr error
	for _, g := range namer.Genders {
		fmt.Fprintf(w, "%s\n\n", g)
		for _, step := range demoSteps {
			opts := append([]namer.Option{namer.WithGender(g)}, step.opts...)

			var (
				names []string
				err   error
			)
			if step.find {
				names, err = c.FindFirstNames(ctx, opts...)
			} else {
				names, err = c.GenerateFullNames(ctx, opts...)
			}

			fmt.Fprintf(w, "%s\n\n", step.title)
			if err != nil {
				fmt.Fprintf(w, "- error: %v\n\n", err)
				if firstErr == nil && !errors.Is(err, namer.ErrNoMatch) {
					firstErr = err
				}
				continue
			}
			fmt.Fprintf(w, "- %s\n\n", strings.Join(names, ", "))
		}
	}
	return firstErr
}
