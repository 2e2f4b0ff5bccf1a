package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	StatusTallies map[string]int64 `json:"statusTallies"`
	OpenTickets   int64            `json:"openTickets"`
	Total         int64            `json:"totalCandidates"`
}

type statusTallyRow struct {
	Status string `db:"status"`
	Count  int64  `db:"cnt"`
}

func registerDashboardRoutes(router *gin.Engine) {
	router.GET("/api/dashboard", getDashboardHandler)
}

func getDashboardHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	cached, found := cash.Get(CACHENAME_DASHBOARD)
	if found {
		resp, ok := cached.(*DashboardResponse)
		if ok {
			c.JSON(200, resp)
			return
		}
	}

	rows := []statusTallyRow{}
	_, err = dbmap.Select(&rows, "SELECT status, COUNT(*) AS cnt FROM candidates GROUP BY status")
	if err != nil {
		ErrorLog.Println("dashboard tally err: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	resp := &DashboardResponse{StatusTallies: map[string]int64{}}
	for _, row := range rows {
		resp.StatusTallies[row.Status] = row.Count
		resp.Total += row.Count
	}

	openTickets, err := dbmap.SelectInt("SELECT COUNT(*) FROM tickets WHERE status = ?", TicketStatusOpen)
	if err != nil {
		ErrorLog.Println("dashboard ticket tally err: ", err)
	}
	resp.OpenTickets = openTickets

	cash.Set(CACHENAME_DASHBOARD, resp, 2*time.Minute)

	c.JSON(200, resp)
}
