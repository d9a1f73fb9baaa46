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
	"github.com/consensys/go-intpoly/pkg/poly"
	"github.com/consensys/go-intpoly/pkg/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var arithCmd = &cobra.Command{
	Use:   "arith [flags] [input_file...]",
	Short: "combine polynomials using addition, subtraction or multiplication.",
	Long: `Read polynomials from the given files (or standard input) and fold
	them together from left to right using the given operation.  For
	example, with "--op sub" the polynomials p1, p2, p3 give (p1 - p2) - p3.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		//
		op, err := lookupOperator(GetString(cmd, "op"))
		if err != nil {
			return err
		}
		//
		polys, err := readPolynomials(cmd, cfg, args)
		if err != nil {
			return err
		} else if len(polys) == 0 {
			return errors.New("no polynomials given")
		}
		//
		stats := util.NewPerfStats()
		result := fold(polys, op)
		stats.Log("arithmetic")
		//
		writePolynomial(cmd.OutOrStdout(), cfg, result)
		//
		return nil
	},
}

// Operators map each supported operation to its compound form, such that the
// accumulator is updated in place.
var operators = map[string]func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial{
	"add": (*poly.Polynomial).AddAssign,
	"sub": (*poly.Polynomial).SubAssign,
	"mul": (*poly.Polynomial).MulAssign,
}

func lookupOperator(name string) (func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial, error) {
	if op, ok := operators[name]; ok {
		return op, nil
	}
	//
	return nil, errors.Errorf("unknown operation %q (expected add, sub or mul)", name)
}

// Fold an operator over one or more polynomials from left to right.
func fold(polys []*poly.Polynomial, op func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial) *poly.Polynomial {
	acc := polys[0].Clone()
	//
	for _, p := range polys[1:] {
		op(acc, p)
		log.Debugf("accumulated %s", acc)
	}
	//
	return acc
}

func init() {
	rootCmd.AddCommand(arithCmd)
	arithCmd.Flags().String("op", "add", "Operation to apply (add, sub or mul)")
}
