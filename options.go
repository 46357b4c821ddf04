package main

import (
	"io"

	"github.com/jcorbin/tinyforth/internal/flushio"
)

// VMOption configures a VM created by New.
type VMOption interface{ apply(vm *VM) }

var defaults = []VMOption{
	withOutput(io.Discard),
	withStackSize(DefaultStackSize),
	withMaxDepth(DefaultMaxDepth),
}

// VMOptions combines any number of options into one, skipping nils.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackSizeOption int
type maxDepthOption int

func withOutput(w io.Writer) outputOption    { return outputOption{w} }
func withTee(w io.Writer) teeOption          { return teeOption{w} }
func withStackSize(size int) stackSizeOption { return stackSizeOption(size) }
func withMaxDepth(depth int) maxDepthOption  { return maxDepthOption(depth) }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (size stackSizeOption) apply(vm *VM) {
	vm.stack.reset(int(size))
}

// apply sets the nesting limit; non-positive depths select DefaultMaxDepth.
func (depth maxDepthOption) apply(vm *VM) {
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	vm.maxDepth = int(depth)
}
