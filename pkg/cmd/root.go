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
	"io"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set with -ldflags "-X" by release builds.
var Version string

var rootCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Rewrite prover for RESOLVE verification conditions.",
	Long: `resolve searches for proofs of verification conditions by rewriting
them with a library of theorems.  A vc file holds any number of declarations:

  (types (Z) (N Z))                    subtype graph, child first
  (theorem T1 (= (+ ?x 0) ?x))         library theorem
  (vc name (antecedents ...) (consequents ...))

Use "resolve prove" to discharge the vcs in one or more files.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !GetFlag(cmd, "version") {
			return cmd.Help()
		}
		//
		info, ok := debug.ReadBuildInfo()
		//
		return printVersion(cmd.OutOrStdout(), Version, info, ok)
	},
}

// versionString determines the version to report, preferring one stamped at
// link time over the module version recorded by the toolchain.
func versionString(stamped string, info *debug.BuildInfo, ok bool) string {
	switch {
	case stamped != "":
		return stamped
	case ok && info.Main.Version != "" && info.Main.Version != "(devel)":
		return info.Main.Version
	default:
		return "devel"
	}
}

func printVersion(out io.Writer, stamped string, info *debug.BuildInfo, ok bool) error {
	_, err := fmt.Fprintf(out, "resolve %s\n", versionString(stamped, info, ok))
	return err
}

// Execute runs the command line, exiting with status 2 on a usage or
// configuration error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "print the version and exit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log files and vcs as they are loaded")
	rootCmd.PersistentFlags().String("config", "", "YAML file of prover settings (flags take precedence)")
}
