// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/config"
	"github.com/audiocloud/schemars-zod/internal/jschema"
	"github.com/audiocloud/schemars-zod/internal/session"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

// stdinPath names the document read from standard input in messages.
const stdinPath = "<stdin>"

var errNoInputs = errors.New("no schema files given: pass them as arguments, list them under inputs in schemazod.yaml, or pipe a schema to stdin")

// projectConfig returns the loaded project config, or the defaults when the
// command runs outside a project.
func projectConfig(cmd *cobra.Command) *config.Config {
	if ctx := session.FromCommand(cmd); ctx != nil {
		return ctx.Config
	}
	return config.Default()
}

// loadRoots loads the schema files named by args, falling back to the
// configured inputs and then to a schema piped on stdin. Arguments are
// relative to the working directory, configured inputs to the project
// directory.
func loadRoots(cmd *cobra.Command, cfg *config.Config, args []string, stdinFormat string) ([]schema.Root, []string, error) {
	var docs []*jschema.Document
	var paths []string
	var err error
	switch {
	case len(args) > 0:
		paths = args
		docs, err = loadFiles("", paths)
	case len(cfg.Inputs) > 0:
		ctx, ctxErr := session.RequireFromCommand(cmd)
		if ctxErr != nil {
			return nil, nil, ctxErr
		}
		paths = cfg.Inputs
		docs, err = loadFiles(ctx.Dir, paths)
	default:
		paths = []string{stdinPath}
		docs, err = loadStdin(cmd.InOrStdin(), stdinFormat)
	}
	if err != nil {
		return nil, nil, err
	}

	naming := func(name string) schema.NamingPolicy {
		policy, err := cfg.NamingFor(name)
		if err != nil {
			return schema.Identity
		}
		return policy
	}

	roots, err := jschema.ToRoots(docs, naming)
	if err != nil {
		return nil, nil, err
	}
	return roots, paths, nil
}

// loadFiles loads paths relative to base, or to the working directory when
// base is empty.
func loadFiles(base string, paths []string) ([]*jschema.Document, error) {
	var err error
	if base == "" {
		if base, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r := p
		if filepath.IsAbs(p) {
			if r, err = filepath.Rel(base, p); err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
		}
		r = filepath.ToSlash(filepath.Clean(r))
		if !fs.ValidPath(r) {
			return nil, fmt.Errorf("%s: schema files must be inside %s", p, base)
		}
		rel = append(rel, r)
	}

	return jschema.NewLoader(os.DirFS(base)).LoadAll(rel...)
}

func loadStdin(in io.Reader, format string) ([]*jschema.Document, error) {
	if !isPiped(in) {
		return nil, errNoInputs
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	f := jschema.JSON
	if format == "yaml" {
		f = jschema.YAML
	}
	s, keyOrder, err := jschema.Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", stdinPath, err)
	}
	return []*jschema.Document{{Path: stdinPath, Schema: s, KeyOrder: keyOrder}}, nil
}

// isPiped reports whether in carries data rather than an interactive terminal.
func isPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func validateStdinFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported stdin format %q (json or yaml)", format)
}
