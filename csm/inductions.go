package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// InductionRecord is the CSM-side copy created when CSO grants Zimyo access.
// A copy only: no foreign key back to CSO, no sync after creation.
type InductionRecord struct {
	ID                    int64  `db:"id, primarykey, autoincrement" json:"id"`
	CSOCandidateID        int64  `db:"cso_candidate_id" json:"csoCandidateId"`
	FirstName             string `db:"first_name" json:"firstName"`
	LastName              string `db:"last_name" json:"lastName"`
	Email                 string `db:"email" json:"email"`
	Position              string `db:"position" json:"position"`
	ZimyoID               string `db:"zimyo_id" json:"zimyoId"`
	ZimyoAccessDate       string `db:"zimyo_access_date" json:"zimyoAccessDate"`
	ExpectedDateOfJoining string `db:"expected_date_of_joining" json:"expectedDateOfJoining"`
	InductionStatus       string `db:"induction_status" json:"inductionStatus"`
	Created               int64  `db:"created" json:"created"`
	Updated               *int64 `db:"updated" json:"updated"`
}

type CSOInductionPost struct {
	CandidateID           int64  `json:"candidateId"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Position              string `json:"position"`
	ZimyoID               string `json:"zimyoId"`
	ZimyoAccessDate       string `json:"zimyoAccessDate"`
	ExpectedDateOfJoining string `json:"expectedDateOfJoining"`
}

func registerInductionRoutes(router *gin.Engine) {
	router.POST("/induction/cso-enroll", csoInductionHandler)
	router.GET("/api/inductions", getInductionsHandler)
}

// csoInductionHandler takes the fire-and-forget zimyo grant copy from CSO.
// CSO re-grants freely, so repeats create additional rows; the portal shows
// the newest one.
func csoInductionHandler(c *gin.Context) {
	input := CSOInductionPost{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		ErrorLog.Println("err binding csoInductionHandler json: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.CandidateID == 0 || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	InfoLog.Printf("new cso induction, candidate: %d, zimyoId: %s\n", input.CandidateID, input.ZimyoID)

	record := inductionFromCSOPost(input)
	record.Created = time.Now().Unix()

	err := dbmap.Insert(&record)
	if err != nil {
		ErrorLog.Println("cant Insert induction record: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occured on our side"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func inductionFromCSOPost(input CSOInductionPost) InductionRecord {
	return InductionRecord{
		CSOCandidateID:        input.CandidateID,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		Email:                 input.Email,
		Position:              input.Position,
		ZimyoID:               input.ZimyoID,
		ZimyoAccessDate:       input.ZimyoAccessDate,
		ExpectedDateOfJoining: input.ExpectedDateOfJoining,
		InductionStatus:       "scheduled",
	}
}

func getInductionsHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allRecords := []InductionRecord{}
	_, err := dbmap.Select(&allRecords, "SELECT * FROM induction_records ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup induction records: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allRecords)
}
