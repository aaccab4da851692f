package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/wsfmt/wsfmt/internal/workerpool"
	"github.com/wsfmt/wsfmt/style"
)

type diffResult struct {
	path    string
	changed bool
	diff    string
}

var diffCmd = &cobra.Command{
	Use:   "diff [paths...]",
	Short: "Print a unified diff of what format would change, without writing",
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

		results, err := workerpool.RunCollect(cmd.Context(), jobs, files, func(_ context.Context, path string) (diffResult, error) {
			return diffFile(path, cfg)
		})
		if err != nil {
			return err
		}

		anyChanged := false
		for _, r := range results {
			if !r.changed {
				continue
			}
			anyChanged = true
			fmt.Fprint(cmd.OutOrStdout(), r.diff)
		}
		if anyChanged {
			return errors.New("one or more files would be reformatted")
		}
		return nil
	},
}

func diffFile(path string, cfg style.Config) (diffResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return diffResult{}, err
	}
	out, err := formatSource(path, src, cfg)
	if err != nil {
		return diffResult{}, err
	}
	if bytes.Equal(src, out) {
		return diffResult{path: path}, nil
	}

	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(src)),
		B:        difflib.SplitLines(string(out)),
		FromFile: path,
		ToFile:   path + " (reformatted)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return diffResult{}, err
	}
	return diffResult{path: path, changed: true, diff: text}, nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
