package main

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// The console front end sends a single deployment token. Inbound cross-app
// endpoints (the /cso/enroll copy) stay open the way webhook receivers do.
func checkAPIToken(c *gin.Context) error {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return errors.New("No auth header")
	}

	if authHeader != secrets.API_TOKEN {
		return errors.New("Not authorized")
	}

	return nil
}
