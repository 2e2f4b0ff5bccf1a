package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func registerAuthRoutes(router *gin.Engine) {
	router.POST("/api/login", login)
}

func login(c *gin.Context) {
	input := LoginCredentials{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	thisUser := User{}
	err := dbmap.SelectOne(&thisUser, "SELECT * FROM users WHERE email = ?", input.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not find that user"})
		return
	}

	if thisUser.PasswordHash != hashPassword(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong password"})
		return
	}

	InfoLog.Printf("LOGIN [email: %s] - SUCCESS\n", input.Email)

	c.JSON(http.StatusOK, LoginResponse{Token: thisUser.Token, User: thisUser})
}

func lookupThisUser(c *gin.Context) (*User, error) {
	authHeader := c.GetHeader("UserToken")
	if authHeader == "" {
		return nil, errors.New("Not authorized")
	}

	thisUser := User{}
	err := dbmap.SelectOne(&thisUser, "SELECT * FROM users WHERE token = ?", authHeader)
	if err != nil {
		return nil, err
	}

	return &thisUser, nil
}
