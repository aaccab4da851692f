package cli

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/wsfmt/wsfmt/internal/workerpool"
	"github.com/wsfmt/wsfmt/style"
)

// checkCmd mirrors the teacher's hashCmd shape: compute one deterministic
// value per input (here, "would this file change") and fail loudly if
// any answer is a problem, without writing anything. Meant for CI gates.
var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Exit nonzero if any file is not already formatted",
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

		changed, err := workerpool.RunCollect(cmd.Context(), jobs, files, func(_ context.Context, path string) (bool, error) {
			return wouldChange(path, cfg)
		})
		if err != nil {
			return err
		}

		badFiles := 0
		for i, c := range changed {
			if c {
				badFiles++
				log.WithField("file", files[i]).Warn("not formatted")
			}
		}
		if badFiles > 0 {
			return errors.New("check: files are not formatted")
		}
		return nil
	},
}

func wouldChange(path string, cfg style.Config) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, err := formatSource(path, src, cfg)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(src, out), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
