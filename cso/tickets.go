package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Ticket is CSO's own support ticket. HR Admin has an entity of the same name
// in its own database; the two are unrelated.
type Ticket struct {
	ID                 int64  `db:"id, primarykey, autoincrement" json:"id"`
	Title              string `db:"title" json:"title"`
	Description        string `db:"description,size:2048" json:"description"`
	Priority           string `db:"priority" json:"priority"`
	Category           string `db:"category" json:"category"`
	RelatedCandidateID *int64 `db:"related_candidate_id" json:"relatedCandidateId"`
	Status             string `db:"status" json:"status"`
	Created            int64  `db:"created" json:"created"`
	Updated            *int64 `db:"updated" json:"updated"`
}

const (
	TicketStatusOpen     = "open"
	TicketStatusResolved = "resolved"

	TicketPriorityHigh   = "high"
	TicketPriorityMedium = "medium"
	TicketPriorityLow    = "low"
)

func registerTicketRoutes(router *gin.Engine) {
	router.GET("/api/tickets", getTicketsHandler)
	router.POST("/api/tickets", addTicketHandler)
	router.PUT("/api/tickets/:id", updateTicketHandler)
}

func getTicketsHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allTickets := []Ticket{}

	candidateParam := c.Query("candidateId")
	if candidateParam != "" {
		candidateID, convErr := strconv.ParseInt(candidateParam, 10, 64)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
			return
		}
		_, err = dbmap.Select(&allTickets, "SELECT * FROM tickets WHERE related_candidate_id = ? ORDER BY created DESC", candidateID)
	} else {
		_, err = dbmap.Select(&allTickets, "SELECT * FROM tickets ORDER BY created DESC")
	}

	if err != nil {
		ErrorLog.Println("cant lookup tickets: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allTickets)
}

func addTicketHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Ticket{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Title == "" || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Priority == "" {
		input.Priority = TicketPriorityMedium
	}
	if input.Status == "" {
		input.Status = TicketStatusOpen
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err = dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert ticket: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func updateTicketHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Ticket{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM tickets WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	input := Ticket{}
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
		ErrorLog.Println("cant Update ticket: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}
