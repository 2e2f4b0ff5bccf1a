package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Employee struct {
	ID         int64  `db:"id, primarykey, autoincrement" json:"id"`
	FirstName  string `db:"first_name" json:"firstName"`
	LastName   string `db:"last_name" json:"lastName"`
	Email      string `db:"email" json:"email"`
	Phone      string `db:"phone" json:"phone"`
	Position   string `db:"position" json:"position"`
	Department string `db:"department" json:"department"`
	JoinDate   string `db:"join_date" json:"joinDate"`
	Active     *bool  `db:"active" json:"active"`
	Created    int64  `db:"created" json:"created"`
	Updated    *int64 `db:"updated" json:"updated"`
}

func registerEmployeeRoutes(router *gin.Engine) {
	router.GET("/api/employees", getEmployeesHandler)
	router.POST("/api/employees", addEmployeeHandler)
	router.PUT("/api/employees/:id", updateEmployeeHandler)
	router.DELETE("/api/employees/:id", deleteEmployeeHandler)
}

func getEmployeesHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allEmployees := []Employee{}
	_, err := dbmap.Select(&allEmployees, "SELECT * FROM employees ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup employees: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allEmployees)
}

func addEmployeeHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Employee{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert employee: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func updateEmployeeHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Employee{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM employees WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	input := Employee{}
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
		ErrorLog.Println("cant Update employee: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}

func deleteEmployeeHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	existing := Employee{}
	err = dbmap.SelectOne(&existing, "SELECT * FROM employees WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	_, err = dbmap.Delete(&existing)
	if err != nil {
		ErrorLog.Println("cant Delete employee: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"message": "Deleted"})
}
