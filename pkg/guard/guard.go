// Package guard decides whether rich failure messages may be built
// in the current execution context.
//
// Finalizers and cleanups run on a runtime-owned goroutine while the
// collector is reclaiming memory; rendering user values from there
// can resurrect objects or call back into code that is not expected
// to run at that time. Callbacks registered through SetFinalizer and
// AddCleanup receive a context marked as a finalization context, and
// InFinalizer lets the message synthesizer skip rendering for it.
package guard

import (
	"context"
	"runtime"
)

// FallbackMessage is returned verbatim instead of a rendered message
// when formatting is not allowed.
const FallbackMessage = "Assertion failed (rich formatting is disabled in finalizers)"

type finalizerKey struct{}

// finalizerCtx is built once so marking a callback never allocates.
var finalizerCtx = WithFinalizer(context.Background())

// WithFinalizer returns a copy of parent marked as a finalization
// context.
func WithFinalizer(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, finalizerKey{}, true)
}

// InFinalizer reports whether ctx was marked by WithFinalizer. It
// does not allocate. A nil context is not a finalization context.
func InFinalizer(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	marked, _ := ctx.Value(finalizerKey{}).(bool)
	return marked
}

// FinalizerContext returns the shared finalization context handed to
// callbacks registered by this package.
func FinalizerContext() context.Context {
	return finalizerCtx
}

// SetFinalizer registers fn as the finalizer of obj, like
// runtime.SetFinalizer, and passes it a finalization context.
func SetFinalizer[T any](obj *T, fn func(ctx context.Context, obj *T)) {
	runtime.SetFinalizer(obj, func(o *T) {
		fn(finalizerCtx, o)
	})
}

// ClearFinalizer removes a finalizer registered with SetFinalizer.
func ClearFinalizer[T any](obj *T) {
	runtime.SetFinalizer(obj, nil)
}

// AddCleanup registers fn to run with arg once obj is unreachable,
// like runtime.AddCleanup, and passes it a finalization context.
func AddCleanup[T, S any](
	obj *T,
	fn func(ctx context.Context, arg S),
	arg S,
) runtime.Cleanup {
	return runtime.AddCleanup(obj, func(a S) {
		fn(finalizerCtx, a)
	}, arg)
}
