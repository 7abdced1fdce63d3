// Copyright (c) 2025-2026 Cidrkit and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cidrkit/cidrkit/pkg/addr"
	"github.com/cidrkit/cidrkit/pkg/cidr"
)

var containsCmd = &cobra.Command{
	Use:   "contains <cidr> <address>",
	Short: "Check whether a CIDR block contains an address",
	Long: `Checks whether the address lies inside the block. Exits 0 when it
does and 1 when it does not.`,
	Args: cobra.ExactArgs(2),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
}

func runContains(cmd *cobra.Command, args []string) error {
	network, err := cidr.Parse(args[0])
	if err != nil {
		return err
	}
	address, err := addr.Parse(args[1])
	if err != nil {
		return err
	}
	contained, err := network.Contains(address)
	if err != nil {
		return err
	}
	if !contained {
		fmt.Fprintf(cmd.OutOrStdout(), "%s does not contain %s\n", network, address)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s contains %s\n", network, address)
	return nil
}
