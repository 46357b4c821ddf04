package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/jcorbin/tinyforth/internal/flushio"
	"github.com/jcorbin/tinyforth/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	os.Exit(run(&log, os.Args, os.Stdout))
}

// run executes the program named by args, then saves the final stack; the
// stack is saved even if reading or running the program failed.
func run(log *logio.Logger, args []string, stdout *os.File) int {
	cfg, err := parseConfig(filepath.Base(args[0]), args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		log.Errorf("%v", err)
		return log.ExitCode()
	}

	out := flushio.NewLineWriter(stdout)
	var opts = []VMOption{
		WithOutput(out),
		WithStackSize(cfg.StackSize),
		WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	var tee *os.File
	if cfg.Tee != "" {
		if tee, err = os.Create(cfg.Tee); err != nil {
			log.Errorf("%v", errors.Wrap(err, "tee failed"))
			return log.ExitCode()
		}
		opts = append(opts, WithTee(tee))
	}
	vm := New(opts...)

	var runErr error
	if src, err := os.ReadFile(cfg.Source); err != nil {
		log.Errorf("%v", errors.Wrap(err, "read failed"))
	} else {
		runErr = vm.Execute(string(src))
	}

	// keep the shell prompt off the end of any partial output line
	if term.IsTerminal(int(stdout.Fd())) {
		log.ErrorIf(out.EndLine())
	}
	// %+v includes the stack of any recovered panic
	if runErr != nil {
		log.Errorf("%+v", runErr)
	}
	if tee != nil {
		log.ErrorIf(tee.Close())
	}

	if cfg.Dump {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}
	log.ErrorIf(saveSnapshot(cfg.Output, vm.Stack()))
	return log.ExitCode()
}
