package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type MonthTally struct {
	Month      string  `db:"month" json:"month"`
	Records    int64   `db:"records" json:"records"`
	TotalNet   float64 `db:"total_net" json:"totalNet"`
	TotalGross float64 `db:"total_gross" json:"totalGross"`
}

type DashboardResponse struct {
	Months           []MonthTally `json:"months"`
	PendingRecords   int64        `json:"pendingRecords"`
	DraftDisclosures int64        `json:"draftDisclosures"`
}

func registerDashboardRoutes(router *gin.Engine) {
	router.GET("/api/dashboard", getDashboardHandler)
}

func getDashboardHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	if cached, found := cash.Get(CACHENAME_DASHBOARD); found {
		c.JSON(200, cached.(DashboardResponse))
		return
	}

	months := []MonthTally{}
	_, err := dbmap.Select(&months,
		"SELECT month, COUNT(*) AS records, SUM(net_pay) AS total_net, SUM(gross_pay) AS total_gross FROM payroll_records GROUP BY month ORDER BY month DESC")
	if err != nil {
		ErrorLog.Println("cant tally payroll months: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	pending, err := dbmap.SelectInt("SELECT COUNT(*) FROM payroll_records WHERE status = ?", PayrollStatusPending)
	if err != nil {
		ErrorLog.Println("cant count pending payroll: ", err)
	}

	drafts, err := dbmap.SelectInt("SELECT COUNT(*) FROM disclosures WHERE status = ?", DisclosureStatusDraft)
	if err != nil {
		ErrorLog.Println("cant count draft disclosures: ", err)
	}

	response := DashboardResponse{Months: months, PendingRecords: pending, DraftDisclosures: drafts}

	cash.Set(CACHENAME_DASHBOARD, response, 2*time.Minute)

	c.JSON(200, response)
}
