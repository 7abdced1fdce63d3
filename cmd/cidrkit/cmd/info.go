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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cidrkit/cidrkit/pkg/cidr"
)

var infoCmd = &cobra.Command{
	Use:   "info <cidr>",
	Short: "Show the structure of a CIDR block",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	network, err := cidr.Parse(args[0])
	if err != nil {
		return err
	}
	logrus.WithField("component", "info").Debugf("parsed %q as %s", args[0], network)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Network:\t%s\n", network)
	fmt.Fprintf(w, "Family:\t%s\n", network.Family())
	fmt.Fprintf(w, "Base address:\t%s\n", network.Base())
	fmt.Fprintf(w, "Last address:\t%s\n", network.LastAddress())
	fmt.Fprintf(w, "Mask:\t%s\n", network.Mask())
	fmt.Fprintf(w, "Prefix bits:\t%d\n", network.PrefixLength())
	fmt.Fprintf(w, "Host bits:\t%d\n", network.HostBits())
	fmt.Fprintf(w, "Host capacity:\t%s\n", network.HostCapacity())
	if parent, ok := network.Supernet(); ok {
		fmt.Fprintf(w, "Supernet:\t%s\n", parent)
	}
	if lower, upper, ok := network.Subnets(); ok {
		fmt.Fprintf(w, "Subnets:\t%s %s\n", lower, upper)
	}
	return w.Flush()
}
