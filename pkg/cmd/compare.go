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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] [input_file...]",
	Short: "check whether two polynomials are equal.",
	Long: `Read exactly two polynomials from the given files (or standard
	input) and report whether or not they are equal.  Trailing zero
	coefficients are not significant.  The exit status is 1 when they differ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		//
		polys, err := readPolynomials(cmd, cfg, args)
		if err != nil {
			return err
		} else if len(polys) != 2 {
			return errors.Errorf("expected two polynomials, found %d", len(polys))
		}
		//
		if polys[0].NotEqual(polys[1]) {
			fmt.Fprintln(cmd.OutOrStdout(), "not equal")
			return errNotEqual
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), "equal")
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
