/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/dpackgen/pkg/compile"
	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/refcodec"
	"github.com/voedger/dpackgen/pkg/schema"
)

func newDecodeCmd() *cobra.Command {
	params := decodeParams{}
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "decodes an encoded record and prints it as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			out := cmd.OutOrStdout()
			if params.Output != "" {
				f, err := os.Create(params.Output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return decode(params, in, out)
		},
	}
	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&params.SchemaFile, flagSchema, "", "schema file declaring the record")
	cmd.Flags().StringVar(&params.Record, flagRecord, "", "record name")
	cmd.Flags().BoolVar(&params.NoValidate, flagNoValidate, false, "do not check the decoded record")
	cmd.Flags().Uint64Var(&params.StringMaxLen, flagStrMaxLen, compile.DefaultStringMaxLen, "value of DPACK_STRLEN_MAX")
	cmd.Flags().BoolVar(&params.Hex, flagHex, false, "input is hex encoded, whitespace ignored")
	cmd.Flags().StringVar(&params.Output, flagOutput, "", "file to write to, standard output if empty")
	_ = cmd.MarkFlagRequired(flagSchema)
	_ = cmd.MarkFlagRequired(flagRecord)
	return cmd
}

func decode(params decodeParams, in io.Reader, out io.Writer) error {
	m, err := schema.LoadFile(params.SchemaFile)
	if err != nil {
		return err
	}
	mod, err := moddesc.Build(m, moddesc.Options{StringMaxLen: params.StringMaxLen, Validate: !params.NoValidate})
	if err != nil {
		return err
	}
	codec := refcodec.New(mod, refcodec.Options{Validate: !params.NoValidate})
	s := codec.Struct(params.Record)
	if s == nil {
		return fmt.Errorf("%w «%s» in module «%s»", errUnknownRecord, params.Record, m.Name)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	if params.Hex {
		data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return err
		}
	}

	v, err := codec.Unpack(s, data)
	if err != nil {
		return errDecode(err, refcodec.Code(err))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = out.Write(buf.Bytes())
	return err
}
