package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	PayrollStatusPending = "pending"
	PayrollStatusPaid    = "paid"
)

type PayrollRecord struct {
	ID            int64   `db:"id, primarykey, autoincrement" json:"id"`
	EmployeeName  string  `db:"employee_name" json:"employeeName"`
	EmployeeEmail string  `db:"employee_email" json:"employeeEmail"`
	Month         string  `db:"month" json:"month"`
	GrossPay      float64 `db:"gross_pay" json:"grossPay"`
	Deductions    float64 `db:"deductions" json:"deductions"`
	NetPay        float64 `db:"net_pay" json:"netPay"`
	Status        string  `db:"status" json:"status"`
	PaidDate      string  `db:"paid_date" json:"paidDate"`
	Notes         string  `db:"notes,size:1000" json:"notes"`
	Created       int64   `db:"created" json:"created"`
	Updated       *int64  `db:"updated" json:"updated"`
}

func registerPayrollRoutes(router *gin.Engine) {
	router.GET("/api/payroll", getPayrollHandler)
	router.GET("/api/payroll/export", exportPayrollHandler)
	router.POST("/api/payroll", addPayrollHandler)
	router.PUT("/api/payroll/:id", savePayrollHandler)
	router.DELETE("/api/payroll/:id", deletePayrollHandler)
}

func getPayrollHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allRecords := []PayrollRecord{}

	month := c.Query("month")
	var err error
	if month != "" {
		_, err = dbmap.Select(&allRecords, "SELECT * FROM payroll_records WHERE month = ? ORDER BY employee_name", month)
	} else {
		_, err = dbmap.Select(&allRecords, "SELECT * FROM payroll_records ORDER BY created DESC")
	}
	if err != nil {
		ErrorLog.Println("cant lookup payroll records: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allRecords)
}

func addPayrollHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := PayrollRecord{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.EmployeeName == "" || input.Month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Status == "" {
		input.Status = PayrollStatusPending
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err := dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert payroll record: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

func savePayrollHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	existing, err := lookupPayrollByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	input := PayrollRecord{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.EmployeeName == "" || input.Month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	input.ID = existing.ID
	input.Created = existing.Created
	updated := time.Now().Unix()
	input.Updated = &updated

	_, err = dbmap.Update(&input)
	if err != nil {
		ErrorLog.Println("cant Update payroll record: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	c.JSON(200, input)
}

func deletePayrollHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	existing, err := lookupPayrollByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	_, err = dbmap.Delete(&existing)
	if err != nil {
		ErrorLog.Println("cant Delete payroll record: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"deleted": existing.ID})
}

func lookupPayrollByParam(c *gin.Context) (PayrollRecord, error) {
	thisRecord := PayrollRecord{}

	err := dbmap.SelectOne(&thisRecord, "SELECT * FROM payroll_records WHERE id = ?", c.Param("id"))
	if err != nil {
		return thisRecord, err
	}

	return thisRecord, nil
}
