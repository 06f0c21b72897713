// Package objectir is the public facade over the ObjectIR virtual machine:
// it wires internal/vmcore's interpreter to internal/hostlib's standard
// library and exposes a small functional-options configuration surface,
// in the manner of the teacher's internal/bytecode.Compiler /
// internal/bytecode.CompilerOption pattern.
package objectir

import (
	"io"

	"github.com/charlie-sans/ObjectRuntime/internal/hostlib"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/moduleio"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmcore"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// Option configures a Machine at construction time.
type Option func(*config)

type config struct {
	recursionLimit int
	onException    func(*vmerrors.RuntimeError)
}

// WithRecursionLimit overrides vmcore.DefaultRecursionLimit.
func WithRecursionLimit(limit int) Option {
	return func(c *config) {
		c.recursionLimit = limit
	}
}

// WithOnException registers a hook invoked with the RuntimeError that
// terminated Run, before Run returns it to the caller. Useful for logging
// or translating the error without changing control flow.
func WithOnException(fn func(*vmerrors.RuntimeError)) Option {
	return func(c *config) {
		c.onException = fn
	}
}

// Machine is a loaded module ready to run: an interpreter with the
// standard library already registered into its class registry.
type Machine struct {
	interp      *vmcore.Interpreter
	onException func(*vmerrors.RuntimeError)
}

// New builds a Machine over mod, writing Console output to output.
func New(mod *module.Module, output io.Writer, opts ...Option) *Machine {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	interp := vmcore.New(mod, output, cfg.recursionLimit)
	hostlib.RegisterAll(interp.Registry, interp.Statics, output)

	return &Machine{interp: interp, onException: cfg.onException}
}

// Load reads a JSON module from path and builds a Machine over it.
func Load(path string, output io.Writer, opts ...Option) (*Machine, error) {
	mod, err := moduleio.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(mod, output, opts...), nil
}

// Run executes the module's entry point. If the run ends in a
// RuntimeError and an OnException hook was configured, the hook observes
// the error before Run returns it.
func (m *Machine) Run() (value.Value, error) {
	result, err := m.interp.Run()
	if err != nil && m.onException != nil {
		if rerr, ok := err.(*vmerrors.RuntimeError); ok {
			m.onException(rerr)
		}
	}
	return result, err
}

// Registry exposes the module's class registry, e.g. so a caller can
// register additional host classes before Run.
func (m *Machine) Registry() *module.ClassRegistry {
	return m.interp.Registry
}
