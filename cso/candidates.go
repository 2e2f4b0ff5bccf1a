package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Candidate is the CSO-owned recruitment record. The client always PUTs the
// full merged object, never a partial patch, so every column is bound here.
// JSON names follow the existing front end contract (camelCase).
type Candidate struct {
	ID        int64  `db:"id, primarykey, autoincrement" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Position  string `db:"position" json:"position"`
	Status    string `db:"status" json:"status"`

	JoiningProbabilityPercent *int64 `db:"joining_probability_percent" json:"joiningProbabilityPercent"`
	ExpectedDateOfJoining     string `db:"expected_date_of_joining" json:"expectedDateOfJoining"`
	OLReleasedDate            string `db:"ol_released_date" json:"olReleasedDate"`

	ZimyoID            string `db:"zimyo_id" json:"zimyoId"`
	ZimyoAccessGranted *bool  `db:"zimyo_access_granted" json:"zimyoAccessGranted"`
	ZimyoAccessDate    string `db:"zimyo_access_date" json:"zimyoAccessDate"`

	ESICStatus    *bool  `db:"esic_status" json:"esicStatus"`
	ESICDate      string `db:"esic_date" json:"esicDate"`
	PFStatus      *bool  `db:"pf_status" json:"pfStatus"`
	PFDate        string `db:"pf_date" json:"pfDate"`
	TDSStatus     *bool  `db:"tds_status" json:"tdsStatus"`
	TDSDate       string `db:"tds_date" json:"tdsDate"`
	MedicalStatus *bool  `db:"medical_status" json:"medicalStatus"`
	MedicalDate   string `db:"medical_date" json:"medicalDate"`

	Documents []CandidateDocument `db:"-" json:"documents"`

	Created int64  `db:"created" json:"created"`
	Updated *int64 `db:"updated" json:"updated"`
}

type CandidateDocument struct {
	ID           int64  `db:"id, primarykey, autoincrement" json:"id"`
	CandidateID  int64  `db:"candidate_id" json:"candidateId"`
	Name         string `db:"name" json:"name"`
	URL          string `db:"url,size:1024" json:"url"`
	DocumentType string `db:"document_type" json:"documentType"`
	UploadedAt   int64  `db:"uploaded_at" json:"uploadedAt"`
}

func registerCandidateRoutes(router *gin.Engine) {
	router.GET("/api/candidates", getCandidatesHandler)
	router.GET("/api/candidates/:id", getCandidateHandler)
	router.POST("/api/candidates", addCandidateHandler)
	router.PUT("/api/candidates/:id", saveCandidateHandler)
	router.DELETE("/api/candidates/:id", deleteCandidateHandler)
	router.POST("/api/candidates/:id/zimyo-access", grantZimyoAccessHandler)
}

func getCandidatesHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allCandidates := []Candidate{}
	_, err = dbmap.Select(&allCandidates, "SELECT * FROM candidates ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup candidates: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	for i := range allCandidates {
		attachDocuments(&allCandidates[i])
	}

	c.JSON(200, allCandidates)
}

func getCandidateHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	thisCandidate, err := lookupCandidateByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	attachDocuments(&thisCandidate)

	c.JSON(200, thisCandidate)
}

func addCandidateHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	input := Candidate{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Status == "" {
		input.Status = StatusPending
	}

	input.ID = 0
	input.Created = time.Now().Unix()

	err = dbmap.Insert(&input)
	if err != nil {
		ErrorLog.Println("cant Insert candidate: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	syncDocuments(&input)

	c.JSON(http.StatusCreated, input)
}

// saveCandidateHandler is the generic save path every lifecycle panel uses.
// The row is overwritten first (last write wins, no concurrency token); only
// after the write commits do the side effects for the saved payload run.
// A failed side effect never rolls the save back or reaches the client.
func saveCandidateHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	existing, err := lookupCandidateByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	input := Candidate{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	if input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	input.ID = existing.ID
	input.Created = existing.Created
	updated := time.Now().Unix()
	input.Updated = &updated

	_, err = dbmap.Update(&input)
	if err != nil {
		ErrorLog.Println("cant Update candidate: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	syncDocuments(&input)

	runCandidateSideEffects(input)

	attachDocuments(&input)

	c.JSON(200, input)
}

func deleteCandidateHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	thisCandidate, err := lookupCandidateByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	dbmap.Exec("DELETE FROM candidate_documents WHERE candidate_id = ?", thisCandidate.ID)

	_, err = dbmap.Delete(&thisCandidate)
	if err != nil {
		ErrorLog.Println("cant Delete candidate: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete"})
		return
	}

	c.JSON(200, gin.H{"message": "Deleted"})
}

// grantZimyoAccessHandler is the dedicated Zimyo action, not the generic save.
// Re-running it succeeds and overwrites zimyoAccessDate; there is no
// idempotency guard on purpose, that matches the front end contract.
func grantZimyoAccessHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	thisCandidate, err := lookupCandidateByParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	input := struct {
		ZimyoID string `json:"zimyoId"`
	}{}
	c.ShouldBindWith(&input, binding.JSON)

	if input.ZimyoID != "" {
		thisCandidate.ZimyoID = input.ZimyoID
	}

	applyZimyoGrant(&thisCandidate, time.Now())

	updated := time.Now().Unix()
	thisCandidate.Updated = &updated

	_, err = dbmap.Update(&thisCandidate)
	if err != nil {
		ErrorLog.Println("cant Update candidate zimyo grant: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not update"})
		return
	}

	// fire and forget: CSM keeps its own copy, a failure here is log-only
	// and the grant above stays committed
	err = postCSMInduction(secrets.CSM_API_BASE, buildInductionEnrollment(thisCandidate))
	if err != nil {
		ErrorLog.Println("postCSMInduction err: ", err)
	}

	attachDocuments(&thisCandidate)

	c.JSON(200, thisCandidate)
}

func lookupCandidateByParam(c *gin.Context) (Candidate, error) {
	thisCandidate := Candidate{}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return thisCandidate, err
	}

	err = dbmap.SelectOne(&thisCandidate, "SELECT * FROM candidates WHERE id = ?", id)
	return thisCandidate, err
}

func attachDocuments(candidate *Candidate) {
	docs := []CandidateDocument{}
	_, err := dbmap.Select(&docs, "SELECT * FROM candidate_documents WHERE candidate_id = ? ORDER BY uploaded_at DESC", candidate.ID)
	if err != nil {
		ErrorLog.Println("cant lookup candidate documents: ", err)
	}
	candidate.Documents = docs
}

// syncDocuments inserts any documents the merged payload carries that have no
// row yet (the upload endpoint only stores the file, the save attaches it).
func syncDocuments(candidate *Candidate) {
	for i := range candidate.Documents {
		doc := candidate.Documents[i]
		if doc.ID != 0 {
			continue
		}

		doc.CandidateID = candidate.ID
		if doc.UploadedAt == 0 {
			doc.UploadedAt = time.Now().Unix()
		}

		err := dbmap.Insert(&doc)
		if err != nil {
			ErrorLog.Println("cant Insert candidate document: ", err)
		}
	}
}
