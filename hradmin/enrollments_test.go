package main

import (
	"testing"
)

func TestEnrollmentFromCSOPostCopiesEveryField(t *testing.T) {
	yes := true
	no := false

	input := CSOEnrollPost{
		CandidateID:   42,
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha@example.com",
		Position:      "Analyst",
		Status:        "join",
		ESICStatus:    &yes,
		ESICDate:      "08/01/2026",
		PFStatus:      &no,
		TDSStatus:     &yes,
		TDSDate:       "08/02/2026",
		MedicalStatus: nil,
	}

	enrollment := enrollmentFromCSOPost(input)

	if enrollment.CSOCandidateID != 42 {
		t.Errorf("csoCandidateId = %d, want 42", enrollment.CSOCandidateID)
	}
	if enrollment.CSOStatus != "join" {
		t.Errorf("csoStatus = %q", enrollment.CSOStatus)
	}
	if enrollment.ESICStatus == nil || !*enrollment.ESICStatus {
		t.Error("esicStatus should copy as true")
	}
	if enrollment.ESICDate != "08/01/2026" {
		t.Errorf("esicDate = %q", enrollment.ESICDate)
	}
	if enrollment.PFStatus == nil || *enrollment.PFStatus {
		t.Error("pfStatus should copy as false, not nil")
	}
	if enrollment.MedicalStatus != nil {
		t.Error("medicalStatus should stay nil when the post omits it")
	}

	// copies never keep a live link: the local row has its own identity
	if enrollment.ID != 0 {
		t.Error("new enrollment should not carry an id before insert")
	}
}
