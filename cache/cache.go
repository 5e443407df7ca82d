package cache

import (
	"github.com/patrickmn/go-cache"
)

// CatalogCache is the symbol-keyed store behind the asset catalog. The
// catalog loads once at startup and never expires entries; a new Load
// replaces them wholesale.
var CatalogCache = cache.New(cache.NoExpiration, 0)
