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
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [input_file...]",
	Short: "evaluate polynomials at a given point.",
	Long: `Read polynomials from the given files (or standard input) and
	evaluate each at the given point.  Evaluation is exact, so results
	may exceed the range of the coefficients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var x big.Int
		//
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		//
		if _, ok := x.SetString(GetString(cmd, "at"), 10); !ok {
			return errors.Errorf("invalid point %q", GetString(cmd, "at"))
		}
		//
		polys, err := readPolynomials(cmd, cfg, args)
		if err != nil {
			return err
		}
		//
		for _, p := range polys {
			fmt.Fprintln(cmd.OutOrStdout(), p.EvalBig(&x).String())
		}
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("at", "0", "Point at which to evaluate")
}
