package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const CACHENAME_DASHBOARD = "dashboard"

var cash = cache.New(5*time.Minute, 10*time.Minute)
