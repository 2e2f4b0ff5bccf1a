package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Client struct {
	ID            int64       `db:"id, primarykey, autoincrement" json:"id"`
	Name          string      `db:"name" json:"name"`
	ContactPerson string      `db:"contact_person" json:"contactPerson"`
	Email         string      `db:"email" json:"email"`
	Phone         string      `db:"phone" json:"phone"`
	Status        string      `db:"status" json:"status"`
	Settings      PropertyMap `db:"settings,size:3000" json:"settings"`
	Created       int64       `db:"created" json:"created"`
	Updated       *int64      `db:"updated" json:"updated"`
}

func registerClientRoutes(router *gin.Engine) {
	router.GET("/api/clients", getClientsHandler)
	router.POST("/api/clients", addClientHandler)
	router.PUT("/api/clients/:id", updateClientHandler)
	router.DELETE("/api/clients/:id", deleteClientHandler)
}

func getClientsHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allClients := []Client{}
	_, err := dbmap.Select(&allClients, "SELECT * FROM clients ORDER BY name")
	if err != nil {
		ErrorLog.Println("cant lookup clients: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allClients)
}

func addClientHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Client{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Name == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Status == "" {
		input.Status = "active"
	}
	if input.Settings == nil {
		input.Settings = PropertyMap{}
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert client: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func updateClientHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Client{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM clients WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	input := Client{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	input.ID = existing.ID
	input.Created = existing.Created
	if input.Settings == nil {
		input.Settings = existing.Settings
	}
	updated := time.Now().Unix()
	input.Updated = &updated

	_, err = dbmap.Update(&input)
	if err != nil {
		ErrorLog.Println("cant Update client: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}

func deleteClientHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Client{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM clients WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	_, err = dbmap.Delete(&existing)
	if err != nil {
		ErrorLog.Println("cant Delete client: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"message": "Deleted"})
}
