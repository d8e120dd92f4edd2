package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionContextFailImmediatelyStopsOnFirstProblem(t *testing.T) {
	ctx := NewExtractionContext(New(), Version{1, 0, 0})
	keepGoing := ctx.Fail("bad value", nil)
	assert.False(t, keepGoing)
	assert.False(t, ctx.Collector().OK())
}

func TestExtractionContextCollectAllKeepsGoingUntilLimit(t *testing.T) {
	ctx := NewExtractionContext(New(), Version{1, 0, 0},
		WithFailureMode(CollectAll), WithMaxFailures(2))

	assert.True(t, ctx.Fail("first", nil))
	assert.False(t, ctx.Fail("second", nil))
	assert.Len(t, ctx.Collector().Problems(), 2)
}

func TestExtractionContextWithPathIsIndependent(t *testing.T) {
	ctx := NewExtractionContext(New(), Version{1, 0, 0})
	child := ctx.WithPath(ctx.Path().Key("a"))
	assert.True(t, ctx.Path().IsRoot())
	assert.Equal(t, ".a", child.Path().String())
}

func TestVersionCompare(t *testing.T) {
	require.Equal(t, -1, Version{1, 0, 0}.Compare(Version{2, 0, 0}))
	require.Equal(t, 0, Version{1, 2, 3}.Compare(Version{1, 2, 3}))
	assert.True(t, Version{1, 5, 0}.AtLeast(Version{1, 4, 9}))
}
