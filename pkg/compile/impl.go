/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/dpackgen/pkg/emitter"
	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/schema"
)

func compile(m *schema.Module, opts Options) (*Unit, error) {
	if opts.Format != "" && opts.Format != FormatDPack {
		return nil, ErrUnknownFormat(opts.Format)
	}
	mod, err := moddesc.Build(m, moddesc.Options{
		StringMaxLen: opts.StringMaxLen,
		Validate:     opts.Validate,
		AssertMacro:  opts.AssertMacro,
	})
	if err != nil {
		return nil, err
	}
	a, err := emitter.Render(mod, emitter.Options{HeaderContent: opts.HeaderContent})
	if err != nil {
		return nil, err
	}
	return &Unit{Schema: m, Module: mod, Artifacts: a}, nil
}

// compileFiles compiles every file in its own goroutine. Every failed file
// contributes its errors; no unit is returned if any file failed.
func compileFiles(ctx context.Context, paths []string, opts Options) ([]*Unit, error) {
	units := make([]*Unit, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := schema.LoadFile(path)
			if err == nil {
				units[i], err = compile(m, opts)
			}
			if err != nil {
				errs[i] = err
				return nil
			}
			units[i].Source = path
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%s: module %s compiled", path, m.Name))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := map[string]string{}
	for _, u := range units {
		if u == nil {
			continue
		}
		if other, ok := names[u.Artifacts.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", u.Source, schema.ErrDuplicate("module", u.Artifacts.Name+" (see "+other+")")))
			continue
		}
		names[u.Artifacts.Name] = u.Source
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return units, nil
}

func writeArtifacts(units []*Unit, opts Options, w io.Writer) error {
	if opts.OutputDir == "" {
		for _, u := range units {
			if _, err := w.Write(u.Artifacts.Declarations); err != nil {
				return err
			}
			if _, err := w.Write(u.Artifacts.Definitions); err != nil {
				return err
			}
		}
		return nil
	}

	if err := os.MkdirAll(opts.OutputDir, dirPerm); err != nil {
		return err
	}
	for _, u := range units {
		files := []struct {
			name string
			data []byte
		}{
			{u.Artifacts.Name + emitter.HeaderSuffix, u.Artifacts.Declarations},
			{u.Artifacts.Name + emitter.SourceSuffix, u.Artifacts.Definitions},
		}
		for _, f := range files {
			path := filepath.Join(opts.OutputDir, f.name)
			if err := os.WriteFile(path, f.data, filePerm); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("%s written", path))
		}
	}
	return nil
}
