package main

import (
	"log"
	"os"
)

type Env struct {
	Production bool
}

var (
	env      *Env
	InfoLog  *log.Logger
	ErrorLog *log.Logger
)

func initEnv() {
	runningEnvironment := os.Getenv("ENV")

	env = &Env{
		Production: runningEnvironment == "prod",
	}
}

func initLogger() {
	infoHandle := os.Stdout

	InfoLog = log.New(infoHandle, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(infoHandle, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
