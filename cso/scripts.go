package main

import (
	"os"
)

func runScripts() {
	runCrons := os.Getenv("CRONS")
	if runCrons == "on" {
		go startCrons()
	}

	seedEmail := os.Getenv("SEEDADMIN")
	if seedEmail != "" {
		seedPassword := os.Getenv("SEEDPASSWORD")
		if seedPassword != "" {
			err := createUserIfNotExists(seedEmail, seedPassword, "Admin", "User")
			if err != nil {
				ErrorLog.Println("seed admin script ERR! ", err)
			}
		}
	}

	digest := os.Getenv("SENDDIGEST")
	if digest != "" {
		sendDailyDigestEmail()
	}
}
