// Package contract provides design-by-contract checks that run on entry to and
// exit from a scope.
//
// Every check returns an exit function meant to be deferred:
//
//	defer contract.Invariant("add", d.Check)()
//	defer contract.PrePost("add", capture, post)()
//
// A failed check is a programming error: it is logged and then raised as a
// panic carrying a *Violation.
package contract

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Kind tells which part of a contract failed.
type Kind string

const (
	KindAssert    Kind = "assert"
	KindEntry     Kind = "invariant on entry"
	KindExit      Kind = "invariant on exit"
	KindPost      Kind = "post-condition"
	KindCondition Kind = "pre-condition"
)

// Violation is the panic value raised by a failed contract.
type Violation struct {
	Label string
	Kind  Kind
	Err   error
}

func (v *Violation) Error() string {
	if v.Err != nil {
		return fmt.Sprintf("contract %q: %s violated: %v", v.Label, v.Kind, v.Err)
	}
	return fmt.Sprintf("contract %q: %s violated", v.Label, v.Kind)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "contract",
		Level:  log.ErrorLevel,
	}))
}

// SetLogger replaces the logger used to report violations. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

func fail(label string, kind Kind, err error) {
	v := &Violation{Label: label, Kind: kind, Err: err}

	logger.Load().Error("contract violated", "label", label, "kind", string(kind), "err", err)

	panic(v)
}

func nop() {}

// Assert fails immediately unless cond holds.
func Assert(label string, cond bool) {
	if !cond {
		fail(label, KindAssert, nil)
	}
}

// Invariant runs check now and again when the returned function is called.
func Invariant(label string, check func() error) (exit func()) {
	if check == nil {
		return nop
	}
	if err := check(); err != nil {
		fail(label, KindEntry, err)
	}

	return func() {
		if err := check(); err != nil {
			fail(label, KindExit, err)
		}
	}
}

// PrePost captures state now and hands both the captured and the final state
// to post when the returned function is called. A nil post always holds.
func PrePost[T any](label string, capture func() T, post func(pre, post T) bool) (exit func()) {
	if capture == nil || post == nil {
		return nop
	}

	pre := capture()

	return func() {
		if !post(pre, capture()) {
			fail(label, KindPost, nil)
		}
	}
}

// Require is PrePost with an extra predicate checked against the captured
// state before the scope runs.
func Require[T any](label string, capture func() T, pre func(T) bool, post func(pre, post T) bool) (exit func()) {
	if capture == nil {
		return nop
	}

	before := capture()

	if pre != nil && !pre(before) {
		fail(label, KindCondition, nil)
	}
	if post == nil {
		return nop
	}

	return func() {
		if !post(before, capture()) {
			fail(label, KindPost, nil)
		}
	}
}
