package cli

import (
	"bytes"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wsfmt/wsfmt/internal/workerpool"
	"github.com/wsfmt/wsfmt/style"
)

var formatCmd = &cobra.Command{
	Use:   "format [paths...]",
	Short: "Reformat source files in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadStyle()
		if err != nil {
			return err
		}
		ignored, err := loadIgnore()
		if err != nil {
			return err
		}
		files, err := discoverFiles(directory, ignored, extension)
		if err != nil {
			return err
		}

		return workerpool.Run(cmd.Context(), jobs, files, func(_ context.Context, path string) error {
			return formatFileInPlace(path, cfg)
		})
	},
}

func formatFileInPlace(path string, cfg style.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := formatSource(path, src, cfg)
	if err != nil {
		return err
	}
	if bytes.Equal(src, out) {
		return nil
	}
	log.WithField("file", path).Info("reformatted")
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, out, mode)
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
