package finder

import (
	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/logging"
	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// compilerCacheSize bounds the pattern cache. The same small pattern
// set is typically reused across many candidate checks in one call and
// across repeated calls, so a modest LRU keeps compilation off the hot
// path without growing with pattern churn.
const compilerCacheSize = 128

// Compiler compiles glob patterns into matchers, memoizing results in
// a bounded LRU cache keyed by the exact pattern string. Compilation
// is a pure function of the pattern text, so entries never need
// invalidation. Each Finder owns its own Compiler; callers that want
// to share a cache across finders can pass one explicitly.
type Compiler struct {
	cache  *lru.Cache[string, glob.Glob]
	logger zerolog.Logger
}

// NewCompiler creates a Compiler with the default cache capacity
func NewCompiler() *Compiler {
	// lru.New only fails for non-positive sizes
	cache, _ := lru.New[string, glob.Glob](compilerCacheSize)
	return &Compiler{
		cache:  cache,
		logger: logging.GetLogger("finder.compiler"),
	}
}

// Compile returns the matcher for a glob pattern, compiling it on a
// cache miss. Compiled matchers are immutable and safe for concurrent
// use.
func (c *Compiler) Compile(pattern string) (glob.Glob, error) {
	if g, ok := c.cache.Get(pattern); ok {
		return g, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternCompile,
			"failed to compile pattern %q", pattern)
	}

	c.cache.Add(pattern, g)
	c.logger.Trace().
		Str("pattern", pattern).
		Int("cached", c.cache.Len()).
		Msg("compiled pattern")

	return g, nil
}

// CacheLen returns the number of cached compiled patterns
func (c *Compiler) CacheLen() int {
	return c.cache.Len()
}
