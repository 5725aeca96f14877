package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namer/pkg/config"
)

// rootFlags override values loaded from the environment.
type rootFlags struct {
	envFiles []string
	baseURL  string
	logLevel string
	seed     uint64
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     *app
	)

	cmd := &cobra.Command{
		Use:           "namer",
		Short:         "Generate random names from public name lists",
		Long:          `namer draws random first names, surnames and full names from downloadable name lists, optionally filtered by gender, prefix and suffix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(flags.envFiles...)
			if err != nil {
				return err
			}
			if flags.baseURL != "" {
				cfg.Source.BaseURL = flags.baseURL
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}
			if flags.seed != 0 {
				cfg.Generator.Seed = flags.seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err = newApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			return err
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&flags.envFiles, "env-file", nil, ".env files to load before reading NAMER_* variables (default ./.env)")
	pf.StringVar(&flags.baseURL, "base-url", "", "location of the name lists: http(s)://, file://, s3:// or a directory")
	pf.StringVarP(&flags.logLevel, "log-level", "L", "", "log level (debug, info, warn, error)")
	pf.Uint64Var(&flags.seed, "seed", 0, "seed for reproducible output (0 means random)")

	appFn := func() *app { return a }
	cmd.AddCommand(
		newGenerateCmd(appFn, generateFirst),
		newGenerateCmd(appFn, generateLast),
		newGenerateCmd(appFn, generateFull),
		newFindCmd(appFn),
		newDemoCmd(appFn),
		newServeCmd(appFn),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
