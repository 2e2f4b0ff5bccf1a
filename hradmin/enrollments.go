package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ComplianceEnrollment is a one-way copy of a CSO candidate's compliance
// fields, created by the inbound /cso/enroll POST. It keeps the candidate id
// for display only; there is no foreign key back to CSO and no later
// synchronization if the CSO record changes.
type ComplianceEnrollment struct {
	ID             int64  `db:"id, primarykey, autoincrement" json:"id"`
	CSOCandidateID int64  `db:"cso_candidate_id" json:"csoCandidateId"`
	FirstName      string `db:"first_name" json:"firstName"`
	LastName       string `db:"last_name" json:"lastName"`
	Email          string `db:"email" json:"email"`
	Position       string `db:"position" json:"position"`
	CSOStatus      string `db:"cso_status" json:"csoStatus"`
	ESICStatus     *bool  `db:"esic_status" json:"esicStatus"`
	ESICDate       string `db:"esic_date" json:"esicDate"`
	PFStatus       *bool  `db:"pf_status" json:"pfStatus"`
	PFDate         string `db:"pf_date" json:"pfDate"`
	TDSStatus      *bool  `db:"tds_status" json:"tdsStatus"`
	TDSDate        string `db:"tds_date" json:"tdsDate"`
	MedicalStatus  *bool  `db:"medical_status" json:"medicalStatus"`
	MedicalDate    string `db:"medical_date" json:"medicalDate"`
	Created        int64  `db:"created" json:"created"`
}

// CSOEnrollPost mirrors the body CSO sends. Field names are the CSO wire
// contract and must not drift.
type CSOEnrollPost struct {
	CandidateID   int64  `json:"candidateId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Position      string `json:"position"`
	Status        string `json:"status"`
	ESICStatus    *bool  `json:"esicStatus"`
	ESICDate      string `json:"esicDate"`
	PFStatus      *bool  `json:"pfStatus"`
	PFDate        string `json:"pfDate"`
	TDSStatus     *bool  `json:"tdsStatus"`
	TDSDate       string `json:"tdsDate"`
	MedicalStatus *bool  `json:"medicalStatus"`
	MedicalDate   string `json:"medicalDate"`
}

func registerEnrollmentRoutes(router *gin.Engine) {
	router.POST("/cso/enroll", csoEnrollHandler)
	router.GET("/api/enrollments", getEnrollmentsHandler)
}

// csoEnrollHandler receives the fire-and-forget compliance copy from CSO.
// Like a webhook receiver it takes no console token; CSO never retries, so a
// rejected body is simply lost on the CSO side.
func csoEnrollHandler(c *gin.Context) {
	input := CSOEnrollPost{}
	if err := c.ShouldBindWith(&input, binding.JSON); err != nil {
		ErrorLog.Println("err binding csoEnrollHandler json: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is wrong format"})
		return
	}

	if input.CandidateID == 0 || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	InfoLog.Printf("new cso enrollment, candidate: %d, email: %s\n", input.CandidateID, input.Email)

	enrollment := enrollmentFromCSOPost(input)
	enrollment.Created = time.Now().Unix()

	err := dbmap.Insert(&enrollment)
	if err != nil {
		ErrorLog.Println("cant Insert compliance enrollment: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occured on our side"})
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

func enrollmentFromCSOPost(input CSOEnrollPost) ComplianceEnrollment {
	return ComplianceEnrollment{
		CSOCandidateID: input.CandidateID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Position:       input.Position,
		CSOStatus:      input.Status,
		ESICStatus:     input.ESICStatus,
		ESICDate:       input.ESICDate,
		PFStatus:       input.PFStatus,
		PFDate:         input.PFDate,
		TDSStatus:      input.TDSStatus,
		TDSDate:        input.TDSDate,
		MedicalStatus:  input.MedicalStatus,
		MedicalDate:    input.MedicalDate,
	}
}

func getEnrollmentsHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allEnrollments := []ComplianceEnrollment{}
	_, err := dbmap.Select(&allEnrollments, "SELECT * FROM compliance_enrollments ORDER BY created DESC")
	if err != nil {
		ErrorLog.Println("cant lookup enrollments: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not found"})
		return
	}

	c.JSON(200, allEnrollments)
}
