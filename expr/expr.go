// Package expr compiles user-written real functions of one variable into
// roots.Func values.
//
// Expressions are Lua expressions in the variable x, e.g.
//
//	x^4 + x^3 - 3*x^2
//	exp(-x) - x
//	sin(x) / (1 + x^2)
//
// The usual math helpers (abs, exp, log, sqrt, sin, cos, tan, asin, acos,
// atan, sinh, cosh, tanh, floor, ceil, pi) are in scope without the "math."
// prefix. Each Function owns one Lua state; Eval is serialised by a mutex so a
// Function may be shared by concurrent refiners.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/Shopify/go-lua"

	"github.com/katalvlaran/lvroot/roots"
)

var (
	// ErrEmpty indicates an empty expression.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrCompile indicates a syntax error in the expression.
	ErrCompile = errors.New("expr: compile failed")

	// ErrEval indicates a runtime error or a non-numeric result.
	ErrEval = errors.New("expr: evaluation failed")
)

// globalName is where the compiled closure lives inside the Lua state.
const globalName = "__lvroot_fn"

// prelude brings math helpers into scope for the expression body.
const prelude = `local abs, exp, log, sqrt = math.abs, math.exp, math.log, math.sqrt
local sin, cos, tan = math.sin, math.cos, math.tan
local asin, acos, atan = math.asin, math.acos, math.atan
local sinh, cosh, tanh = math.sinh, math.cosh, math.tanh
local floor, ceil, pi = math.floor, math.ceil, math.pi
`

// Function is a compiled expression.
type Function struct {
	src string

	mu  sync.Mutex
	l   *lua.State
	err error // first evaluation error, sticky
}

// Compile parses src as a Lua expression in x.
// Errors: ErrEmpty, ErrCompile (wrapping the Lua message).
func Compile(src string) (*Function, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}

	l := lua.NewState()
	lua.OpenLibraries(l)
	chunk := prelude + "return function(x) return (" + src + ") end"
	if err := lua.LoadString(l, chunk); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, err)
	}
	// Running the chunk leaves the closure on the stack.
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, err)
	}
	if !l.IsFunction(-1) {
		return nil, fmt.Errorf("%w: %q: not a function", ErrCompile, src)
	}
	l.SetGlobal(globalName)

	return &Function{src: src, l: l}, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// package-level fixtures.
func MustCompile(src string) *Function {
	fn, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return fn
}

// Source returns the trimmed expression text.
func (fn *Function) Source() string { return fn.src }

// Eval evaluates the expression at x. On a runtime error, or when the
// expression does not produce a number, Eval returns NaN and records the
// first such error (see Err).
func (fn *Function) Eval(x float64) float64 {
	fn.mu.Lock()
	defer fn.mu.Unlock()

	fn.l.Global(globalName)
	fn.l.PushNumber(x)
	if err := fn.l.ProtectedCall(1, 1, 0); err != nil {
		fn.record(fmt.Errorf("%w: %q at x=%g: %v", ErrEval, fn.src, x, err))

		return math.NaN()
	}
	v, ok := fn.l.ToNumber(-1)
	fn.l.Pop(1)
	if !ok {
		fn.record(fmt.Errorf("%w: %q at x=%g: result is not a number", ErrEval, fn.src, x))

		return math.NaN()
	}

	return v
}

// Func adapts the expression to roots.Func.
func (fn *Function) Func() roots.Func { return fn.Eval }

// Err returns the first evaluation error, if any.
func (fn *Function) Err() error {
	fn.mu.Lock()
	defer fn.mu.Unlock()

	return fn.err
}

// record keeps the first error; the caller holds mu.
func (fn *Function) record(err error) {
	if fn.err == nil {
		fn.err = err
	}
}

// Optional compiles src, returning (nil, nil) for an empty expression.
// Used for the optional derivative.
func Optional(src string) (*Function, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	return Compile(src)
}

// FuncOf returns fn.Func(), or nil when fn is nil.
func FuncOf(fn *Function) roots.Func {
	if fn == nil {
		return nil
	}

	return fn.Func()
}
