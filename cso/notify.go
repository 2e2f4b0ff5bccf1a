package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

// HREnrollmentPost is the one-way compliance copy sent to HR Admin. The
// receiving side stores its own row; nothing links back to this candidate
// after the POST lands.
type HREnrollmentPost struct {
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

// CSMInductionPost is the one-way induction copy sent to CSM when Zimyo
// access is granted.
type CSMInductionPost struct {
	CandidateID           int64  `json:"candidateId"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Position              string `json:"position"`
	ZimyoID               string `json:"zimyoId"`
	ZimyoAccessDate       string `json:"zimyoAccessDate"`
	ExpectedDateOfJoining string `json:"expectedDateOfJoining"`
}

func buildHREnrollment(candidate Candidate) HREnrollmentPost {
	return HREnrollmentPost{
		CandidateID:   candidate.ID,
		FirstName:     candidate.FirstName,
		LastName:      candidate.LastName,
		Email:         candidate.Email,
		Position:      candidate.Position,
		Status:        candidate.Status,
		ESICStatus:    candidate.ESICStatus,
		ESICDate:      candidate.ESICDate,
		PFStatus:      candidate.PFStatus,
		PFDate:        candidate.PFDate,
		TDSStatus:     candidate.TDSStatus,
		TDSDate:       candidate.TDSDate,
		MedicalStatus: candidate.MedicalStatus,
		MedicalDate:   candidate.MedicalDate,
	}
}

func buildInductionEnrollment(candidate Candidate) CSMInductionPost {
	return CSMInductionPost{
		CandidateID:           candidate.ID,
		FirstName:             candidate.FirstName,
		LastName:              candidate.LastName,
		Email:                 candidate.Email,
		Position:              candidate.Position,
		ZimyoID:               candidate.ZimyoID,
		ZimyoAccessDate:       candidate.ZimyoAccessDate,
		ExpectedDateOfJoining: candidate.ExpectedDateOfJoining,
	}
}

func postHREnrollment(apiBase string, body HREnrollmentPost) error {
	return postJSON(apiBase+"/cso/enroll", body)
}

func postCSMInduction(apiBase string, body CSMInductionPost) error {
	return postJSON(apiBase+"/induction/cso-enroll", body)
}

func postJSON(url string, body interface{}) error {
	b := new(bytes.Buffer)
	json.NewEncoder(b).Encode(body)

	req, err := http.NewRequest("POST", url, b)
	if err != nil {
		return errors.New("postJSON NewRequest err: " + err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return errors.New("postJSON Do err: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		bodyBytes, _ := ioutil.ReadAll(resp.Body)
		bodyString := string(bodyBytes)

		return errors.New(fmt.Sprintf("postJSON bad request - url: %s, status: %d, body: %s", url, resp.StatusCode, bodyString))
	}

	return nil
}
