package finder

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiler_CachesByPatternText(t *testing.T) {
	c := NewCompiler()

	g1, err := c.Compile("*report*")
	require.NoError(t, err)
	assert.Equal(t, 1, c.CacheLen())

	g2, err := c.Compile("*report*")
	require.NoError(t, err)
	assert.Equal(t, 1, c.CacheLen(), "repeat compile must hit the cache")
	assert.Equal(t, g1, g2)

	_, err = c.Compile("*other*")
	require.NoError(t, err)
	assert.Equal(t, 2, c.CacheLen())
}

func TestCompiler_EvictsBeyondCapacity(t *testing.T) {
	c := NewCompiler()

	for i := 0; i < compilerCacheSize+10; i++ {
		_, err := c.Compile(fmt.Sprintf("*p%d*", i))
		require.NoError(t, err)
	}

	assert.Equal(t, compilerCacheSize, c.CacheLen())
}

func TestCompiler_InvalidPattern(t *testing.T) {
	c := NewCompiler()

	_, err := c.Compile("[")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternCompile))
	assert.Equal(t, 0, c.CacheLen(), "failed compiles must not be cached")
}

func TestCompiler_MatchSemantics(t *testing.T) {
	c := NewCompiler()

	g, err := c.Compile("*b*")
	require.NoError(t, err)
	assert.True(t, g.Match("b.txt"))
	assert.True(t, g.Match("abc"))
	assert.False(t, g.Match("a.txt"))

	g, err = c.Compile("rep*")
	require.NoError(t, err)
	assert.True(t, g.Match("report.csv"))
	assert.False(t, g.Match("my_report.csv"))
}
