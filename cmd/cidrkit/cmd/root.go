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

// Package cmd holds the cidrkit CLI commands. The CLI is a thin caller of
// the library: every verdict it prints comes straight out of pkg/cidr and
// pkg/relation, with the offending input reported verbatim on failure.
package cmd

import (
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cidrkit",
	Short: "Inspect and relate IP addresses and CIDR blocks",
	Long: `cidrkit parses IPv4/IPv6 addresses and CIDR blocks and answers
structural questions about them: containment, subnet/supernet,
overlap and allow/deny screening.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		logrus.SetFormatter(&nested.Formatter{
			FieldsOrder: []string{"component"},
		})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
