// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/demo"
	"github.com/lpsteps/simplex/problem"
	"github.com/lpsteps/simplex/run"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	if err := cmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

// options holds the flags shared by every command.
type options struct {
	places      int
	maxSteps    int
	legacyRatio bool
	prompt      string
	debug       []string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.places, "places", config.DefaultPlaces, "decimal digits kept in a tableau holding decimal values")
	fs.IntVar(&o.maxSteps, "max-steps", config.DefaultMaxSteps, "maximum number of pivots per problem; 0 means no limit")
	fs.BoolVar(&o.legacyRatio, "legacy-ratio", false, "consider only the first two constraint rows in the ratio test")
	fs.StringVar(&o.prompt, "prompt", "", "text printed before each question")
	fs.StringSliceVar(&o.debug, "debug", nil, "debug settings to enable: "+strings.Join(config.DebugFlags, ", "))
}

// config returns the configuration the flags describe.
func (o *options) config(out, errOut io.Writer) (*config.Config, error) {
	conf := new(config.Config)
	conf.SetOutput(out)
	conf.SetErrOutput(errOut)
	conf.SetPrompt(o.prompt)
	if o.places < 0 {
		return nil, errors.Errorf("invalid --places %d", o.places)
	}
	conf.SetPlaces(o.places)
	if o.maxSteps < 0 {
		return nil, errors.Errorf("invalid --max-steps %d", o.maxSteps)
	}
	conf.SetMaxSteps(o.maxSteps)
	conf.SetLegacyRatio(o.legacyRatio)
	for _, name := range o.debug {
		if !validDebug(name) {
			return nil, errors.Errorf("unknown debug setting %q; known settings: %s", name, strings.Join(config.DebugFlags, ", "))
		}
		conf.SetDebug(name, 1)
	}
	return conf, nil
}

func validDebug(name string) bool {
	for _, d := range config.DebugFlags {
		if d == name {
			return true
		}
	}
	return false
}

// newCommand returns the root command. Without a subcommand it reads
// problems interactively from in.
func newCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := new(options)
	var interactive bool
	cmd := &cobra.Command{
		Use:   "simplex",
		Short: "Solve two-variable linear programs step by step",
		Long: `Simplex maximizes a linear objective in x and y subject to linear
constraints, printing the tableau after every pivot.

Without a subcommand it asks for an objective function and constraints,
solves the problem, and asks whether to continue.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := o.config(out, errOut)
			if err != nil {
				return err
			}
			if isTerminal(in) {
				interactive = true
			}
			return run.Run(conf, in, interactive)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	o.addFlags(cmd.PersistentFlags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "print questions even when input is not a terminal")
	cmd.AddCommand(newSolveCommand(o, out, errOut))
	cmd.AddCommand(newDemoCommand(o, out, errOut))
	return cmd
}

func newSolveCommand(o *options, out, errOut io.Writer) *cobra.Command {
	var (
		files []string
		yaml  bool
	)
	cmd := &cobra.Command{
		Use:   "solve [-f file.yaml]... | solve objective constraint...",
		Short: "Solve problems from YAML files or from the command line",
		Example: `  simplex solve 'z = 120x + 100y' '2x + 2y <= 8' '5x + 3y <= 15'
  simplex solve -f problems.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := o.config(out, errOut)
			if err != nil {
				return err
			}
			var problems []problem.Problem
			switch {
			case len(files) > 0 && len(args) > 0:
				return errors.New("give either problem files or an objective and constraints, not both")
			case len(files) > 0:
				for _, name := range files {
					ps, err := problem.Load(name)
					if err != nil {
						return err
					}
					problems = append(problems, ps...)
				}
			case len(args) >= 2:
				p := problem.Problem{Objective: args[0], Constraints: args[1:]}
				if err := p.Validate(); err != nil {
					return err
				}
				problems = append(problems, p)
			default:
				return errors.New("need an objective function and at least one constraint")
			}
			if yaml {
				return problem.Encode(out, problems)
			}
			return solveAll(conf, problems)
		},
	}
	cmd.Flags().StringSliceVarP(&files, "filename", "f", nil, "YAML file of problems; may be repeated")
	cmd.Flags().BoolVar(&yaml, "yaml", false, "write the problems as YAML instead of solving them")
	return cmd
}

func newDemoCommand(o *options, out, errOut io.Writer) *cobra.Command {
	var printYAML bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in example problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printYAML {
				_, err := io.WriteString(out, demo.Text())
				return err
			}
			conf, err := o.config(out, errOut)
			if err != nil {
				return err
			}
			return solveAll(conf, demo.Problems())
		},
	}
	cmd.Flags().BoolVar(&printYAML, "print", false, "print the demo problems as YAML instead of solving them")
	return cmd
}

// solveAll solves each problem in turn, separating the traces with a
// blank line. Failures are reported as they happen and solving goes on;
// the result is an error if any problem failed.
func solveAll(conf *config.Config, problems []problem.Problem) error {
	failed := 0
	for i, p := range problems {
		if i > 0 {
			fmt.Fprintln(conf.Output())
		}
		if err := run.Solve(conf, p); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d problems failed", failed, len(problems))
	}
	return nil
}
