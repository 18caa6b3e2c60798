package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanSingletonIdentity(t *testing.T) {
	require.Same(t, TRUE, NativeBoolToBooleanObject(true))
	require.Same(t, FALSE, NativeBoolToBooleanObject(false))
}

func TestEnvironmentScopeChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 2})

	val, ok := inner.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*Integer).Value)

	_, ok = inner.Get("y")
	require.True(t, ok)

	_, ok = outer.Get("y")
	require.False(t, ok, "Set on inner must not leak into outer")
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &Integer{Value: 2})

	val, _ := inner.Get("x")
	require.Equal(t, int64(2), val.(*Integer).Value)

	val, _ = outer.Get("x")
	require.Equal(t, int64(1), val.(*Integer).Value)
}

func TestInspect(t *testing.T) {
	require.Equal(t, "5", (&Integer{Value: 5}).Inspect())
	require.Equal(t, "true", TRUE.Inspect())
	require.Equal(t, "null", NULL.Inspect())
	require.Equal(t, "ERROR: boom", (&Error{Message: "boom"}).Inspect())
	require.Equal(t, "5", (&ReturnValue{Value: &Integer{Value: 5}}).Inspect())
}
