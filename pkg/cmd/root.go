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
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// errNotEqual signals that compared polynomials differ.  Nothing is reported for
// it beyond the exit status.
var errNotEqual = errors.New("polynomials not equal")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intpoly",
	Short: "A calculator for integer polynomials.",
	Long: `A calculator for univariate polynomials with integer coefficients.
	Polynomials are read either as lists of "coefficient exponent" pairs
	terminated by "-1 -1", or as sums of terms such as "3x^2 - x + 1".`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !GetFlag(cmd, "version") {
			return cmd.Help()
		}
		//
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "intpoly ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Fprintf(out, "%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Fprintf(out, "%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Fprintf(out, "(unknown version)")
		}
		//
		fmt.Fprintln(out)
		//
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); errors.Is(err, errNotEqual) {
		os.Exit(1)
	} else if err != nil {
		log.Error(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "read settings from a TOML or YAML file")
	rootCmd.PersistentFlags().Bool("strict", false, "report negative exponents in input as errors")
	rootCmd.PersistentFlags().Int("max-exponent", 0, "largest exponent accepted in input (0 for no limit)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "input syntax (pairs or terms)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output syntax (pairs or terms)")
}
