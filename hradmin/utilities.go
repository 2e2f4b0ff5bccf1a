package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Utility tracks recurring office services (electricity, internet, rent).
type Utility struct {
	ID       int64   `db:"id, primarykey, autoincrement" json:"id"`
	Name     string  `db:"name" json:"name"`
	Provider string  `db:"provider" json:"provider"`
	Amount   float64 `db:"amount" json:"amount"`
	DueDate  string  `db:"due_date" json:"dueDate"`
	Paid     *bool   `db:"paid" json:"paid"`
	Created  int64   `db:"created" json:"created"`
	Updated  *int64  `db:"updated" json:"updated"`
}

func registerUtilityRoutes(router *gin.Engine) {
	router.GET("/api/utilities", getUtilitiesHandler)
	router.POST("/api/utilities", addUtilityHandler)
	router.PUT("/api/utilities/:id", updateUtilityHandler)
	router.DELETE("/api/utilities/:id", deleteUtilityHandler)
}

func getUtilitiesHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allUtilities := []Utility{}
	_, err := dbmap.Select(&allUtilities, "SELECT * FROM utilities ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup utilities: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allUtilities)
}

func addUtilityHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Utility{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Name == "" || input.Provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert utility: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func updateUtilityHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Utility{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM utilities WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utility not found"})
		return
	}

	input := Utility{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	input.ID = existing.ID
	input.Created = existing.Created
	updated := time.Now().Unix()
	input.Updated = &updated

	_, err = dbmap.Update(&input)
	if err != nil {
		ErrorLog.Println("cant Update utility: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}

func deleteUtilityHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Utility{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM utilities WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utility not found"})
		return
	}

	_, err = dbmap.Delete(&existing)
	if err != nil {
		ErrorLog.Println("cant Delete utility: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"message": "Deleted"})
}
