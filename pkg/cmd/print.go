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

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] [input_file...]",
	Short: "print polynomials.",
	Long: `Read polynomials from the given files (or standard input) and
	print each of them on its own line.  This can be used to convert between
	the pair list and term syntaxes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		//
		polys, err := readPolynomials(cmd, cfg, args)
		if err != nil {
			return err
		}
		//
		for _, p := range polys {
			if GetFlag(cmd, "degree") {
				fmt.Fprintf(cmd.OutOrStdout(), "degree %d:", p.Degree())
			}
			//
			writePolynomial(cmd.OutOrStdout(), cfg, p)
		}
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().Bool("degree", false, "Print the degree of each polynomial")
}
