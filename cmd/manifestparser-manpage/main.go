package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/manifestdestiny/internal/cli"
	"github.com/arthur-debert/manifestdestiny/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MANIFESTPARSER",
		Section: "1",
		Source:  "manifestparser " + version.Version,
		Manual:  "manifestparser manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
