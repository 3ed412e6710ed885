package words

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of identifiers a Cache remembers.
const DefaultCacheSize = 4096

// Cache memoizes Split and is safe for concurrent use.
// A nil *Cache simply calls Split.
type Cache struct {
	lru *lru.Cache[string, []Token]
}

// NewCache creates a cache holding up to size identifiers.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, []Token](size)
	if err != nil {
		return nil, err
	}

	return &Cache{lru: c}, nil
}

// Split is like the package-level Split. The returned slice is owned by
// the caller.
func (c *Cache) Split(ident string) []Token {
	if c == nil {
		return Split(ident)
	}

	if tokens, ok := c.lru.Get(ident); ok {
		return slices.Clone(tokens)
	}

	tokens := Split(ident)
	c.lru.Add(ident, tokens)

	return slices.Clone(tokens)
}

// Len reports how many identifiers are cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	return c.lru.Len()
}
