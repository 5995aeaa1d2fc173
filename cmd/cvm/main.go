// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/cvm/cpu"
	"github.com/ezrec/cvm/emulator"
	"github.com/ezrec/cvm/translate"
)

// options shared by all subcommands.
type options struct {
	config  string
	budget  int
	verbose bool
	strict  bool
}

// emulator returns a reset emulator for sample, with the options applied.
func (opt *options) emulator(sample emulator.Sample) (emu *emulator.Emulator, err error) {
	emu = sample.Emulator()
	emu.Verbose = opt.verbose
	emu.Budget = opt.budget

	if len(opt.config) != 0 {
		emu.Config, err = cpu.ParseConfig(opt.config)
		if err != nil {
			return
		}
	}
	emu.Config.Strict = opt.strict

	err = emu.Reset()
	return
}

// lookup finds the named samples, or all of them if names is empty.
func lookup(names []string) (samples []emulator.Sample) {
	if len(names) == 0 {
		return emulator.Samples
	}

	for _, name := range names {
		sample, ok := emulator.LookupSample(name)
		if !ok {
			log.Fatalf("%v: unknown sample", name)
		}
		samples = append(samples, sample)
	}

	return
}

func main() {
	opt := &options{}

	rootCmd := &cobra.Command{
		Use:   "cvm",
		Short: "cvm register machine",
		Long: `Runs the hand assembled demonstration programs of the cvm
16-bit register machine, with optional tracing and single stepping.`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&opt.config, "config", "c", "", "Machine variant: basic, split or stack (default: per sample)")
	rootCmd.PersistentFlags().IntVarP(&opt.budget, "budget", "b", 100000, "Maximum instructions per run, 0 for unlimited")
	rootCmd.PersistentFlags().BoolVarP(&opt.verbose, "verbose", "v", false, "Trace every instruction")
	rootCmd.PersistentFlags().BoolVarP(&opt.strict, "strict", "s", false, "Fault on stack misuse and out of range fetch")

	runCmd := &cobra.Command{
		Use:   "run [sample...]",
		Short: "Run samples to completion",
		Run: func(cmd *cobra.Command, args []string) {
			failed := 0
			for _, sample := range lookup(args) {
				if !run(opt, sample) {
					failed++
				}
			}
			if failed != 0 {
				log.Fatalf("%d sample(s) failed", failed)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the samples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, sample := range emulator.Samples {
				translate.Fprintf(os.Stdout, "%-14s %-6v %3d words  %v\n",
					sample.Name, sample.Config, len(sample.Words), sample.Expect)
			}
		},
	}

	disasmCmd := &cobra.Command{
		Use:   "disasm <sample>",
		Short: "Disassemble a sample",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, sample := range lookup(args) {
				os.Stdout.WriteString(sample.Listing())
			}
		},
	}

	debugCmd := &cobra.Command{
		Use:   "debug <sample>",
		Short: "Single step a sample interactively",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sample := lookup(args)[0]
			emu, err := opt.emulator(sample)
			if err != nil {
				log.Fatalf("%v: %v", sample.Name, err)
			}
			emu.Console.Output = os.Stdout
			err = debug(emu)
			if err != nil {
				log.Fatal(err)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, disasmCmd, debugCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes one sample, and reports whether it met its expectation.
func run(opt *options, sample emulator.Sample) (ok bool) {
	translate.Fprintf(os.Stdout, "==========================\n")

	emu, err := opt.emulator(sample)
	if err != nil {
		log.Printf("%v: %v", sample.Name, err)
		return
	}
	emu.Console.Output = os.Stdout

	err = emu.Run()
	if emu.Console.Written != 0 {
		translate.Fprintf(os.Stdout, "\n")
	}
	translate.Fprintf(os.Stdout, "%v\n", emu.Cpu.Dump())
	if err != nil {
		log.Printf("%v: %v", sample.Name, err)
		return
	}

	if len(sample.Expect) != 0 {
		err = emu.Expect(sample.Expect)
		if err != nil {
			log.Printf("%v: %v", sample.Name, err)
			return
		}
	}

	return true
}
