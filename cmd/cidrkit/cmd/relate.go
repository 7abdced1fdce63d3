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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cidrkit/cidrkit/pkg/cidr"
	"github.com/cidrkit/cidrkit/pkg/relation"
)

var relateCmd = &cobra.Command{
	Use:   "relate <cidr-a> <cidr-b>",
	Short: "Report the structural relation between two CIDR blocks",
	Args:  cobra.ExactArgs(2),
	RunE:  runRelate,
}

func init() {
	rootCmd.AddCommand(relateCmd)
}

func runRelate(cmd *cobra.Command, args []string) error {
	a, err := cidr.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := cidr.Parse(args[1])
	if err != nil {
		return err
	}

	subnet, err := relation.IsSubnetOf(a, b)
	if err != nil {
		return err
	}
	supernet, err := relation.IsSupernetOf(a, b)
	if err != nil {
		return err
	}
	overlap, err := relation.Overlaps(a, b)
	if err != nil {
		return err
	}
	specificity, err := relation.CompareSpecificity(a, b)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s subnet of %s:\t%t\n", a, b, subnet)
	fmt.Fprintf(w, "%s supernet of %s:\t%t\n", a, b, supernet)
	fmt.Fprintf(w, "overlap:\t%t\n", overlap)
	if specificity == relation.EquallySpecific {
		fmt.Fprintf(w, "specificity:\t%s and %s are equally specific\n", a, b)
	} else {
		fmt.Fprintf(w, "specificity:\t%s is %s than %s\n", a, specificity, b)
	}
	return w.Flush()
}
