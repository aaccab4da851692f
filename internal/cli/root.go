package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "wsfmt",
		Short:        "wsfmt",
		SilenceUsage: true,
		Long:         `Whitespace formatter for the target language.`,
	}

	directory  string
	styleName  string
	configPath string
	ignoreFile string
	extension  string
	jobs       int
	linesFlag  string
	debug      bool

	log = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for source files")
	rootCmd.PersistentFlags().StringVar(&styleName, "style", "", "named style baseline (default, chromium) or a path accepted by --config")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a style config file, overlaid onto --style")
	rootCmd.PersistentFlags().StringVar(&ignoreFile, "ignore-file", ".wsfmtignore", "path to an ignore file, relative to --directory")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", ".src", "file extension identifying source files to format")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "maximum number of files to format concurrently (0 = unbounded)")
	rootCmd.PersistentFlags().StringVar(&linesFlag, "lines", "", "restrict formatting to original source lines start-end (e.g. 10-25); leave unset to format the whole file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "recover internal panics as InternalInvariant errors carrying the panic value, instead of crashing")
	return rootCmd.Execute()
}

func init() {
}
