package main

import (
	cron "gopkg.in/robfig/cron.v2"
)

func startCrons() {
	crons := cron.New()

	// nightly push of released disclosures
	crons.AddFunc("TZ=Asia/Kolkata 0 2 * * *", runDisclosureFeed)

	crons.Start()

	InfoLog.Println("Started crons")
}
