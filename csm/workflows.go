package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Workflow is a multi-step onboarding checklist for a client. Steps complete
// strictly in order; unlike the CSO candidate lifecycle this IS guarded
// server-side, because the portal owns both ends of the contract.
type Workflow struct {
	ID       int64            `db:"id, primarykey, autoincrement" json:"id"`
	ClientID int64            `db:"client_id" json:"clientId"`
	Name     string           `db:"name" json:"name"`
	Steps    WorkflowStepList `db:"steps,size:3000" json:"steps"`
	Created  int64            `db:"created" json:"created"`
	Updated  *int64           `db:"updated" json:"updated"`
}

type WorkflowStep struct {
	Name        string `json:"name"`
	Completed   bool   `json:"completed"`
	CompletedAt int64  `json:"completedAt"`
}

type CompleteStepRequest struct {
	StepIndex int `json:"stepIndex"`
}

func registerWorkflowRoutes(router *gin.Engine) {
	router.GET("/api/workflows", getWorkflowsHandler)
	router.POST("/api/workflows", addWorkflowHandler)
	router.POST("/api/workflows/:id/complete-step", completeStepHandler)
}

func getWorkflowsHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allWorkflows := []Workflow{}
	_, err := dbmap.Select(&allWorkflows, "SELECT * FROM workflows ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup workflows: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allWorkflows)
}

func addWorkflowHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Workflow{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.Name == "" || input.ClientID == 0 || len(input.Steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	for i := range input.Steps {
		input.Steps[i].Completed = false
		input.Steps[i].CompletedAt = 0
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert workflow: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func completeStepHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	thisWorkflow := Workflow{}
	err = dbmap.SelectOne(&thisWorkflow, "SELECT * FROM workflows WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
		return
	}

	input := CompleteStepRequest{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	err = completeWorkflowStep(&thisWorkflow, input.StepIndex, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated := time.Now().Unix()
	thisWorkflow.Updated = &updated

	_, err = dbmap.Update(&thisWorkflow)
	if err != nil {
		ErrorLog.Println("cant Update workflow: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, thisWorkflow)
}

// completeWorkflowStep enforces the sequential contract: step N only
// completes when every earlier step already has.
func completeWorkflowStep(workflow *Workflow, index int, now time.Time) error {
	if index < 0 || index >= len(workflow.Steps) {
		return errors.New("No such step")
	}

	if workflow.Steps[index].Completed {
		return errors.New("Step already completed")
	}

	for i := 0; i < index; i++ {
		if !workflow.Steps[i].Completed {
			return errors.New("Previous steps must be completed first")
		}
	}

	workflow.Steps[index].Completed = true
	workflow.Steps[index].CompletedAt = now.Unix()

	return nil
}
