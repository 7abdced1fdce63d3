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
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cidrkit/cidrkit/pkg/policy"
)

var policyFile string

var checkCmd = &cobra.Command{
	Use:   "check --policy <file> <address>...",
	Short: "Screen addresses against a YAML allow/deny policy",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&policyFile, "policy", "", "path to a YAML policy file")
	_ = checkCmd.MarkFlagRequired("policy")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(policyFile)
	if err != nil {
		return errors.Wrapf(err, "cannot read policy file %q", policyFile)
	}
	p, err := policy.Load(data)
	if err != nil {
		return err
	}
	logrus.WithField("component", "check").Debugf("loaded policy from %q", policyFile)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, text := range args {
		decision, err := p.DecideString(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", text, decision)
	}
	return w.Flush()
}
