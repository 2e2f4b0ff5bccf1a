package main

import (
	"github.com/gin-gonic/gin"
)

func main() {
	initEnv()
	initLogger()
	loadSecrets()
	initDB()
	initEmailTemplates()
	initCache()

	if env.Production {
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
	}

	router := gin.New()

	if env.Production {
		router.Use(GinLogger())
	} else {
		router.Use(gin.Logger())
	}

	router.Use(gin.Recovery())

	registerRoutes(router)

	runScripts()

	router.Run(":" + secrets.Port)
}

func registerRoutes(router *gin.Engine) {
	registerAuthRoutes(router)
	registerCandidateRoutes(router)
	registerTicketRoutes(router)
	registerUploadRoutes(router)
	registerDashboardRoutes(router)
}
