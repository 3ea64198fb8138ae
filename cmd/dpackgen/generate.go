/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dpackgen/pkg/compile"
)

func newGenerateCmd() *cobra.Command {
	params := generateParams{}
	cmd := &cobra.Command{
		Use:   "generate [schema files]",
		Short: "generates <module>.h and <module>.c for every schema file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(params.ConfigFile)
			if err != nil {
				return err
			}
			opts, err := generateOptions(cmd, params, cfg)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = cfg.Schemas
			}
			return generate(cmd, args, opts)
		},
	}
	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&params.ConfigFile, flagConfig, "", "configuration file, "+defaultConfig+" if present")
	cmd.Flags().StringVar(&params.Format, flagFormat, compile.FormatDPack, "output format")
	cmd.Flags().StringVarP(&params.OutputDir, flagOutputDir, "o", "", "directory to write files to, standard output if empty")
	cmd.Flags().BoolVar(&params.NoValidate, flagNoValidate, false, "do not check decoded records in unpack functions")
	cmd.Flags().Uint64Var(&params.StringMaxLen, flagStrMaxLen, compile.DefaultStringMaxLen, "value of DPACK_STRLEN_MAX")
	cmd.Flags().StringVar(&params.HeaderFile, flagHeaderFile, "", "file whose content is put on top of generated files")
	cmd.Flags().StringVar(&params.AssertMacro, flagAssert, "", "assertion macro used by generated code")
	return cmd
}

// generateOptions merges flags explicitly set over the configuration.
func generateOptions(cmd *cobra.Command, params generateParams, cfg *config) (compile.Options, error) {
	opts := compile.DefaultOptions()
	if cfg.Format != "" {
		opts.Format = cfg.Format
	}
	if cfg.Validate != nil {
		opts.Validate = *cfg.Validate
	}
	if cfg.StringMaxLen != 0 {
		opts.StringMaxLen = cfg.StringMaxLen
	}
	opts.OutputDir = cfg.OutputDir
	opts.AssertMacro = cfg.AssertMacro
	headerFile := cfg.HeaderFile

	flags := cmd.Flags()
	if flags.Changed(flagFormat) {
		opts.Format = params.Format
	}
	if flags.Changed(flagNoValidate) {
		opts.Validate = !params.NoValidate
	}
	if flags.Changed(flagStrMaxLen) {
		opts.StringMaxLen = params.StringMaxLen
	}
	if flags.Changed(flagOutputDir) {
		opts.OutputDir = params.OutputDir
	}
	if flags.Changed(flagAssert) {
		opts.AssertMacro = params.AssertMacro
	}
	if flags.Changed(flagHeaderFile) {
		headerFile = params.HeaderFile
	}

	if headerFile != "" {
		content, err := os.ReadFile(headerFile)
		if err != nil {
			return opts, fmt.Errorf("failed to read header file: %w", err)
		}
		opts.HeaderContent = string(content)
	}
	if opts.Format != compile.FormatDPack {
		return opts, compile.ErrUnknownFormat(opts.Format)
	}
	return opts, nil
}

func generate(cmd *cobra.Command, files []string, opts compile.Options) error {
	if len(files) == 0 {
		return errNoSchemas
	}
	units, err := compile.CompileFiles(cmd.Context(), files, opts)
	if err != nil {
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%d error(s) found", len(compile.SplitErrors(err))))
		}
		return err
	}
	return compile.WriteArtifacts(units, opts, cmd.OutOrStdout())
}
