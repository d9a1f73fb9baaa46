// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-intpoly/pkg/config"
	"github.com/consensys/go-intpoly/pkg/poly"
	"github.com/consensys/go-intpoly/pkg/util/source"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	//
	return r
}

// GetInt gets an expected int flag, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	//
	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Determine the settings for this run, starting from the configuration file (if
// given) and then applying any flags given explicitly.  This also configures
// the log level.
func getConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	//
	if filename := GetString(cmd, "config"); filename != "" {
		loaded, err := config.Load(filename)
		if err != nil {
			return nil, err
		}
		//
		cfg = *loaded
	}
	//
	if cmd.Flags().Changed("strict") {
		cfg.Input.Strict = GetFlag(cmd, "strict")
	}
	//
	if cmd.Flags().Changed("max-exponent") {
		cfg.Input.MaxExponent = GetInt(cmd, "max-exponent")
	}
	//
	if format := GetString(cmd, "input"); format != "" {
		cfg.Input.Format = format
	}
	//
	if format := GetString(cmd, "output"); format != "" {
		cfg.Output.Format = format
	}
	//
	if GetFlag(cmd, "verbose") {
		cfg.LogLevel = log.DebugLevel.String()
	}
	//
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	//
	log.SetLevel(cfg.Level())
	//
	return &cfg, nil
}

// Read every polynomial from the given files or, if none are given, from
// standard input.  Syntax errors are printed with highlighting, and reported
// as a single error.
func readPolynomials(cmd *cobra.Command, cfg *config.Config, filenames []string) ([]*poly.Polynomial, error) {
	var polys []*poly.Polynomial
	//
	if len(filenames) == 0 {
		return readStdin(cmd, cfg)
	}
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	//
	for i := range files {
		ps, err := parseFile(cmd, cfg, &files[i])
		if err != nil {
			return nil, err
		}
		//
		log.Debugf("read %d polynomial(s) from %s", len(ps), files[i].Filename())
		polys = append(polys, ps...)
	}
	//
	return polys, nil
}

func readStdin(cmd *cobra.Command, cfg *config.Config) ([]*poly.Polynomial, error) {
	in := cmd.InOrStdin()
	// Interactive pair lists are read incrementally.
	if isTerminal(in) && cfg.Input.Format == config.PAIRS {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter \"coefficient exponent\" pairs, ending each polynomial with -1 -1 (Ctrl-D to finish):")
		//
		polys, err := poly.NewReader(in, cfg.Options()).ReadAll()
		//
		return polys, errors.Wrap(err, "reading standard input")
	} else if isTerminal(in) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter one polynomial per line, such as 3x^2 - x + 1 (Ctrl-D to finish):")
	}
	//
	srcfile, err := source.ReadFrom("<stdin>", in)
	if err != nil {
		return nil, errors.Wrap(err, "reading standard input")
	}
	//
	return parseFile(cmd, cfg, srcfile)
}

func parseFile(cmd *cobra.Command, cfg *config.Config, srcfile *source.File) ([]*poly.Polynomial, error) {
	var (
		polys []*poly.Polynomial
		errs  []source.SyntaxError
	)
	//
	if cfg.Input.Format == config.TERMS {
		polys, errs = poly.ParseAllTerms(srcfile, cfg.Options())
	} else {
		polys, errs = poly.ParseAllPairs(srcfile, cfg.Options())
	}
	//
	if len(errs) > 0 {
		printSyntaxErrors(cmd.ErrOrStderr(), errs)
		return nil, errors.Errorf("%s: %d syntax error(s)", srcfile.Filename(), len(errs))
	}
	//
	return polys, nil
}

// Write a polynomial in the configured output syntax.
func writePolynomial(w io.Writer, cfg *config.Config, p *poly.Polynomial) {
	if cfg.Output.Format == config.PAIRS {
		fmt.Fprintln(w, p.FormatPairs())
	} else {
		fmt.Fprintln(w, p.String())
	}
}

// Print syntax errors with appropriate highlighting.
func printSyntaxErrors(w io.Writer, errs []source.SyntaxError) {
	for _, err := range errs {
		printSyntaxError(w, &err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-(span.Start()-line.Start()), span.Length())
	// Print error + line number
	fmt.Fprintf(w, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent
	fmt.Fprint(w, strings.Repeat(" ", span.Start()-line.Start()))
	// Print highlight (at least one character, so the end of input is visible)
	fmt.Fprintln(w, strings.Repeat("^", max(1, length)))
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
