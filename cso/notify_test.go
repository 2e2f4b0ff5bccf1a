package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostHREnrollmentSendsComplianceCopy(t *testing.T) {
	var got HREnrollmentPost
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode err: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	candidate := Candidate{
		ID:         42,
		FirstName:  "Asha",
		LastName:   "Verma",
		Email:      "asha@example.com",
		Status:     StatusJoin,
		ESICStatus: boolPtr(true),
		ESICDate:   "08/01/2026",
	}

	err := postHREnrollment(server.URL, buildHREnrollment(candidate))
	if err != nil {
		t.Fatalf("postHREnrollment err: %v", err)
	}

	if gotPath != "/cso/enroll" {
		t.Errorf("path = %q, want /cso/enroll", gotPath)
	}
	if got.CandidateID != 42 {
		t.Errorf("candidateId = %d, want 42", got.CandidateID)
	}
	if got.ESICStatus == nil || !*got.ESICStatus {
		t.Error("body should carry esicStatus true")
	}
}

// Fire-and-forget contract: a failing downstream only produces an error for
// the caller to log. The candidate save has already committed by the time
// this runs, so the error must never translate into a failed save.
func TestPostHREnrollmentFailureIsAnErrorOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down for maintenance"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := postHREnrollment(server.URL, HREnrollmentPost{CandidateID: 1})
	if err == nil {
		t.Fatal("expected an error from a 503 downstream")
	}
}

func TestPostCSMInductionSendsZimyoCopy(t *testing.T) {
	var got CSMInductionPost
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	candidate := Candidate{
		ID:              8,
		FirstName:       "Ravi",
		LastName:        "Iyer",
		Email:           "ravi@example.com",
		ZimyoID:         "ZY-1042",
		ZimyoAccessDate: "08/20/2026",
	}

	err := postCSMInduction(server.URL, buildInductionEnrollment(candidate))
	if err != nil {
		t.Fatalf("postCSMInduction err: %v", err)
	}

	if gotPath != "/induction/cso-enroll" {
		t.Errorf("path = %q, want /induction/cso-enroll", gotPath)
	}
	if got.ZimyoID != "ZY-1042" {
		t.Errorf("zimyoId = %q", got.ZimyoID)
	}
	if got.ZimyoAccessDate != "08/20/2026" {
		t.Errorf("zimyoAccessDate = %q", got.ZimyoAccessDate)
	}
}

func TestPostJSONRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := postJSON(server.URL+"/anything", map[string]string{"a": "b"})
	if err == nil {
		t.Fatal("expected error on 400")
	}
}
