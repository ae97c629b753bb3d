package main

import (
	"os"

	"github.com/arthur-debert/dotmerge/cmd/dotmerge"
	"github.com/arthur-debert/dotmerge/pkg/report"
)

func main() {
	rootCmd := dotmerge.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = report.NewRenderer(os.Stderr, report.DetectFormat(os.Stderr) == report.FormatText).RenderError(err)
		os.Exit(1)
	}
}
