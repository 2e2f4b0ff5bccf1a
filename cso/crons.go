package main

import (
	cron "gopkg.in/robfig/cron.v2"
)

// Crons only send digests. Tickets and enrollments are created exclusively by
// client-triggered saves, never by a background reconciler.
func startCrons() {
	c := cron.New()

	c.AddFunc("TZ=Asia/Kolkata 0 9 * * *", func() {
		sendDailyDigestEmail()
	})

	InfoLog.Println("starting crons")

	c.Start()
}
