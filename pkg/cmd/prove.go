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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/nmsafiri/RESOLVE/pkg/prover"
	"github.com/nmsafiri/RESOLVE/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove [flags] vc_file(s)",
	Short: "Attempt to prove the verification conditions in one or more files.",
	Long: `Attempt to prove every verification condition contained in the given
	files, using the theorems declared alongside them.  Exits with status 1
	if any verification condition remains undetermined.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		if GetFlag(cmd, "trace") {
			log.SetLevel(log.TraceLevel)
		}
		//
		config, err := prover.LoadConfig(GetString(cmd, "config"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Command-line flags override the configuration file
		if cmd.Flags().Changed("max-depth") {
			config.MaxDepth = GetUint(cmd, "max-depth")
		}
		//
		if cmd.Flags().Changed("max-steps") {
			config.MaxSteps = GetUint(cmd, "max-steps")
		}
		//
		if cmd.Flags().Changed("workers") {
			config.Workers = GetUint(cmd, "workers")
		}
		//
		if cmd.Flags().Changed("timeout") {
			config.TimeLimit = time.Duration(GetUint(cmd, "timeout")) * time.Millisecond
		}
		//
		if err := config.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		opts := reportOptions{
			proofs:      GetFlag(cmd, "proofs"),
			full:        GetFlag(cmd, "full"),
			ansiEscapes: GetFlag(cmd, "ansi-escapes"),
		}
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		//
		p := prover.NewProver(config)
		//
		undetermined, err := proveFiles(ctx, os.Stdout, p, args, opts)
		//
		if GetFlag(cmd, "watch") {
			if err != nil {
				fmt.Println(err)
			}
			// Re-prove each file as it changes
			err = watchFiles(ctx, args, func(file string) {
				if _, err := proveFiles(ctx, os.Stdout, p, []string{file}, opts); err != nil {
					fmt.Println(err)
				}
			})
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			return
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if undetermined > 0 {
			os.Exit(1)
		}
	},
}

// reportOptions determines how the results of a proof attempt are reported.
type reportOptions struct {
	// Print the steps of each proof found.
	proofs bool
	// Print every step, rather than only those contributing.
	full bool
	// Use ANSI escapes to colour the report.
	ansiEscapes bool
}

// proveFiles attempts every VC in the given files, reporting the results and
// returning the number of VCs which remain undetermined.
func proveFiles(ctx context.Context, out io.Writer, p *prover.Prover, files []string,
	opts reportOptions) (uint, error) {
	var undetermined uint
	//
	for _, file := range files {
		problem, err := prover.LoadFile(file)
		if err != nil {
			return undetermined, err
		}
		//
		log.Debugf("loaded %d vc(s) and %d theorem(s) from %s", len(problem.VCs), problem.Library.Len(), file)
		//
		results, err := p.ProveAll(ctx, problem)
		if err != nil {
			return undetermined, err
		}
		//
		for _, r := range results {
			if r.Status != prover.PROVED {
				undetermined++
			}
		}
		//
		if err := report(out, file, results, opts); err != nil {
			return undetermined, err
		}
	}
	//
	return undetermined, nil
}

func report(out io.Writer, file string, results []prover.Result, opts reportOptions) error {
	table := termio.NewTablePrinter(5)
	table.AnsiEscapes(opts.ansiEscapes)
	//
	header := table.AddRow("vc", "status", "steps", "explored", "time")
	//
	for c := range table.Width() {
		table.SetEscape(c, header, termio.BoldAnsiEscape())
	}
	//
	for _, r := range results {
		row := table.AddRow(r.VC, r.Status.String(), fmt.Sprintf("%d", len(r.Minimal)),
			fmt.Sprintf("%d", r.Explored), r.Duration.Round(time.Millisecond).String())
		//
		colour := termio.TERM_GREEN
		if r.Status != prover.PROVED {
			colour = termio.TERM_RED
		}
		//
		table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(colour))
	}
	//
	fmt.Fprintf(out, "%s:\n", file)
	//
	if err := table.Print(out); err != nil {
		return err
	}
	//
	if opts.proofs {
		for _, r := range results {
			steps := r.Minimal
			if opts.full {
				steps = r.Steps
			}
			//
			if r.Status == prover.PROVED {
				fmt.Fprintf(out, "\n%s:\n", r.VC)
				//
				for i, step := range steps {
					fmt.Fprintf(out, "  %d. %s\n", i+1, step)
				}
			} else if r.Err != nil {
				fmt.Fprintf(out, "\n%s: %s\n", r.VC, r.Err)
			}
		}
	}
	//
	return nil
}

func init() {
	proveCmd.Flags().Uint("max-depth", prover.DefaultConfig().MaxDepth, "maximum number of steps in a proof")
	proveCmd.Flags().Uint("max-steps", prover.DefaultConfig().MaxSteps, "maximum number of applications explored per vc")
	proveCmd.Flags().UintP("workers", "j", prover.DefaultConfig().Workers, "number of vcs proved concurrently")
	proveCmd.Flags().Uint("timeout", 0, "time limit per vc in milliseconds (0 means unlimited)")
	proveCmd.Flags().BoolP("proofs", "p", false, "print the proof of each vc")
	proveCmd.Flags().Bool("full", false, "print every step of a proof, rather than only those contributing")
	proveCmd.Flags().Bool("trace", false, "log every application tried")
	proveCmd.Flags().BoolP("watch", "w", false, "re-prove files whenever they change")
	proveCmd.Flags().Bool("ansi-escapes", term.IsTerminal(int(os.Stdout.Fd())),
		"specify whether to allow ANSI escapes or not (e.g. for colour reports)")
	rootCmd.AddCommand(proveCmd)
}
