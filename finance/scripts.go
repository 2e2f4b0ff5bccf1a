package main

import (
	"os"
)

func runScripts() {
	if os.Getenv("CRONS") == "on" {
		startCrons()
	}

	if os.Getenv("PUSHFEED") == "now" {
		runDisclosureFeed()
	}
}
