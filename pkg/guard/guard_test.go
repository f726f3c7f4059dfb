package guard

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type resource struct {
	name *string
	buf  [64]byte
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInFinalizer(t *testing.T) {
	ctx := context.Background()
	assert.False(t, InFinalizer(ctx))
	assert.False(t, InFinalizer(nil)) //nolint:staticcheck // nil ctx is part of the contract

	marked := WithFinalizer(ctx)
	assert.True(t, InFinalizer(marked))

	type other struct{}
	child := context.WithValue(marked, other{}, "x")
	assert.True(t, InFinalizer(child))

	assert.True(t, InFinalizer(FinalizerContext()))
}

func TestWithFinalizer_NilParent(t *testing.T) {
	ctx := WithFinalizer(nil) //nolint:staticcheck // nil ctx is part of the contract
	require.NotNil(t, ctx)
	assert.True(t, InFinalizer(ctx))
}

func TestInFinalizer_DoesNotAllocate(t *testing.T) {
	plain := context.Background()
	marked := FinalizerContext()

	allocs := testing.AllocsPerRun(100, func() {
		_ = InFinalizer(plain)
		_ = InFinalizer(marked)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestSetFinalizer_PassesFinalizerContext(t *testing.T) {
	seen := make(chan bool, 1)

	func() {
		obj := &resource{}
		SetFinalizer(obj, func(ctx context.Context, _ *resource) {
			seen <- InFinalizer(ctx)
		})
	}()

	assert.True(t, waitFor(t, seen))
}

func TestAddCleanup_PassesFinalizerContext(t *testing.T) {
	seen := make(chan bool, 1)

	func() {
		obj := &resource{}
		AddCleanup(obj, func(ctx context.Context, tag string) {
			seen <- InFinalizer(ctx) && tag == "tag"
		}, "tag")
	}()

	assert.True(t, waitFor(t, seen))
}

func TestClearFinalizer(t *testing.T) {
	obj := &resource{}
	SetFinalizer(obj, func(context.Context, *resource) {
		t.Error("cleared finalizer ran")
	})
	ClearFinalizer(obj)
	runtime.GC()
}

func TestTrusted(t *testing.T) {
	assert.Equal(t, "5", Trusted(func() string { return "5" }))

	out := TrustedAll([]func() string{
		func() string { return "a" },
		func() string { return "b" },
	})
	assert.Equal(t, []string{"a", "b"}, out)
	assert.Empty(t, TrustedAll(nil))
}

func waitFor(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case v := <-ch:
			return v
		case <-deadline:
			t.Fatal("finalizer did not run")
			return false
		case <-time.After(10 * time.Millisecond):
		}
	}
}
