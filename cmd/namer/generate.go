package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/namer/pkg/namer"
)

type generateKind int

const (
	generateFirst generateKind = iota
	generateLast
	generateFull
)

// nameFlags mirrors namer.Options on the command line.
type nameFlags struct {
	count         int
	gender        string
	prefix        string
	suffix        string
	surnamePrefix string
	surnameSuffix string
}

func (f *nameFlags) register(fs *pflag.FlagSet, withCount bool) {
	if withCount {
		fs.IntVarP(&f.count, "count", "n", namer.DefaultCount, "number of names to generate")
	}
	fs.StringVarP(&f.gender, "gender", "g", "unified", "unified, male or female")
	fs.StringVar(&f.prefix, "prefix", "", "first names must start with this")
	fs.StringVar(&f.suffix, "suffix", "", "first names must end with this")
	fs.StringVar(&f.surnamePrefix, "surname-prefix", "", "surnames must start with this")
	fs.StringVar(&f.surnameSuffix, "surname-suffix", "", "surnames must end with this")
}

func (f *nameFlags) options() (namer.Options, error) {
	g, err := namer.ParseGender(f.gender)
	if err != nil {
		return namer.Options{}, err
	}
	if f.count < 0 {
		return namer.Options{}, fmt.Errorf("count must be >= 0, got %d", f.count)
	}
	return namer.Options{
		Count:         f.count,
		NamePrefix:    f.prefix,
		NameSuffix:    f.suffix,
		SurnamePrefix: f.surnamePrefix,
		SurnameSuffix: f.surnameSuffix,
		Gender:        g,
	}, nil
}

func newGenerateCmd(appFn func() *app, kind generateKind) *cobra.Command {
	var flags nameFlags

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := flags.options()
			if err != nil {
				return err
			}
			c := appFn().composer

			var op func(context.Context, ...namer.Option) ([]string, error)
			switch kind {
			case generateFirst:
				op = c.GenerateFirstNames
			case generateLast:
				op = c.GenerateLastNames
			default:
				op = c.GenerateFullNames
			}

			names, err := op(cmd.Context(), namer.WithOptions(o))
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), names)
		},
	}

	switch kind {
	case generateFirst:
		cmd.Use = "first"
		cmd.Short = "Generate random first names"
	case generateLast:
		cmd.Use = "last"
		cmd.Short = "Generate random surnames"
	default:
		cmd.Use = "full"
		cmd.Short = "Generate random full names"
	}
	flags.register(cmd.Flags(), true)
	return cmd
}

func newFindCmd(appFn func() *app) *cobra.Command {
	var (
		flags    nameFlags
		surnames bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "List every name matching the filters",
		Long: `find prints every first name of the selected gender list matching --prefix and --suffix,
or with --surnames every surname matching --surname-prefix and --surname-suffix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := flags.options()
			if err != nil {
				return err
			}
			c := appFn().composer

			var names []string
			if surnames {
				names, err = c.FindLastNames(cmd.Context(), namer.WithOptions(o))
			} else {
				names, err = c.FindFirstNames(cmd.Context(), namer.WithOptions(o))
			}
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), names)
		},
	}

	flags.register(cmd.Flags(), false)
	cmd.Flags().BoolVar(&surnames, "surnames", false, "search surnames instead of first names")
	return cmd
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
