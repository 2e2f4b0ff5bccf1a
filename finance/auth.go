package main

import (
	"errors"

	"github.com/gin-gonic/gin"
)

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
