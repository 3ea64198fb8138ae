/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dpackgen/pkg/compile"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		for _, e := range compile.SplitErrors(err) {
			logger.Error(e)
		}
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	ver = strings.TrimSpace(ver)
	rootCmd := cobrau.PrepareRootCmd(
		appName,
		"generates C structs and dpack codecs from record schemas",
		args,
		ver,
		newGenerateCmd(),
		newDecodeCmd(),
		newVersionCmd(ver),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the version of " + appName,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appName, "version", ver)
		},
	}
}
