package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	DisclosureStatusDraft    = "draft"
	DisclosureStatusReleased = "released"
)

type Disclosure struct {
	ID           int64   `db:"id, primarykey, autoincrement" json:"id"`
	Title        string  `db:"title" json:"title"`
	Category     string  `db:"category" json:"category"`
	Period       string  `db:"period" json:"period"`
	Amount       float64 `db:"amount" json:"amount"`
	Status       string  `db:"status" json:"status"`
	ReleasedDate string  `db:"released_date" json:"releasedDate"`
	Notes        string  `db:"notes,size:1000" json:"notes"`
	Created      int64   `db:"created" json:"created"`
	Updated      *int64  `db:"updated" json:"updated"`
}

func registerDisclosureRoutes(router *gin.Engine) {
	router.GET("/api/disclosures", getDisclosuresHandler)
	router.POST("/api/disclosures", addDisclosureHandler)
	router.PUT("/api/disclosures/:id", saveDisclosureHandler)
	router.DELETE("/api/disclosures/:id", deleteDisclosureHandler)
}

func getDisclosuresHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allDisclosures := []Disclosure{}
	_, err := dbmap.Select(&allDisclosures, "SELECT * FROM disclosures ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup disclosures: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allDisclosures)
}

func addDisclosureHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Disclosure{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Title == "" || input.Period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Status == "" {
		input.Status = DisclosureStatusDraft
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert disclosure: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func saveDisclosureHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	existing := Disclosure{}
	err := dbmap.SelectOne(&existing, "SELECT * FROM disclosures WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Disclosure not found"})
		return
	}

	input := Disclosure{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Title == "" || input.Period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	// releasing stamps the date once, a re-save of a released row keeps it
	if input.Status == DisclosureStatusReleased && input.ReleasedDate == "" {
		if existing.ReleasedDate != "" {
			input.ReleasedDate = existing.ReleasedDate
		} else {
			input.ReleasedDate = time.Now().Format("01/02/2006")
		}
	}

	input.ID = existing.ID
	input.Created = existing.Created
	updated := time.Now().Unix()
	input.Updated = &updated

	_, err = dbmap.Update(&input)
	if err != nil {
		ErrorLog.Println("cant Update disclosure: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}

func deleteDisclosureHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	existing := Disclosure{}
	err := dbmap.SelectOne(&existing, "SELECT * FROM disclosures WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Disclosure not found"})
		return
	}

	_, err = dbmap.Delete(&existing)
	if err != nil {
		ErrorLog.Println("cant Delete disclosure: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"deleted": existing.ID})
}
