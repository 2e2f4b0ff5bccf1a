package main

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

var cash *cache.Cache

const (
	CACHENAME_DASHBOARD = "dashboard"

	DEFAULT_CACHE_EXPIRATION = 5 * time.Minute
)

func initCache() {
	cash = cache.New(DEFAULT_CACHE_EXPIRATION, 10*time.Minute)
}
