package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndMatch(t *testing.T) {
	spec, err := Compile("6!n3!a15d")
	require.NoError(t, err)
	assert.Equal(t, "6!n3!a15d", spec.Label)
	require.Len(t, spec.Concat.Atoms, 3)

	comps, ok := spec.Match("241201JPY1000,50")
	require.True(t, ok)
	assert.Equal(t, []string{"241201", "JPY", "1000,50"}, comps)

	assert.Equal(t, "241201JPY1000,50", spec.Emit(comps))
}

func TestCompileRejectsVariableNonFinalAtom(t *testing.T) {
	_, err := Compile("6n3!a")
	require.Error(t, err)
}

func TestCompileRejectsUnknownClass(t *testing.T) {
	_, err := Compile("3!q")
	require.Error(t, err)
}

func TestCompileRejectsEmptySpec(t *testing.T) {
	_, err := Compile("")
	require.Error(t, err)
}

func TestSpecMatchRejectsWrongClass(t *testing.T) {
	spec := MustCompile("3!a")
	_, ok := spec.Match("1x9")
	assert.False(t, ok)
}

func TestSpecMatchRejectsOverlongFinalAtom(t *testing.T) {
	spec := MustCompile("3!a15d")
	_, ok := spec.Match("JPY1234567890123456")
	assert.False(t, ok)
}

func TestMustCompilePanicsOnMalformedSpec(t *testing.T) {
	assert.Panics(t, func() { MustCompile("!!!") })
}
