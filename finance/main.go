package main

import (
	"github.com/gin-gonic/gin"
)

func main() {
	initEnv()
	initLogger()
	loadSecrets()
	initDB()

	if env.Production {
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	registerRoutes(router)

	runScripts()

	router.Run(":" + secrets.Port)
}

func registerRoutes(router *gin.Engine) {
	registerPayrollRoutes(router)
	registerDisclosureRoutes(router)
	registerDashboardRoutes(router)
}
