package main

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func intPtr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestReviewingSavePlansOneHighPriorityTicket(t *testing.T) {
	candidate := Candidate{
		ID:        7,
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Status:    StatusReviewing,
	}

	plan := planCandidateSideEffects(candidate)

	if len(plan.Tickets) != 1 {
		t.Fatalf("expected exactly 1 ticket, got %d", len(plan.Tickets))
	}

	ticket := plan.Tickets[0]
	if ticket.Priority != TicketPriorityHigh {
		t.Errorf("expected high priority, got %q", ticket.Priority)
	}
	if !strings.Contains(ticket.Description, strconv.FormatInt(candidate.ID, 10)) {
		t.Errorf("description should contain candidate id, got %q", ticket.Description)
	}
	if ticket.RelatedCandidateID == nil || *ticket.RelatedCandidateID != candidate.ID {
		t.Errorf("ticket not linked to candidate: %+v", ticket.RelatedCandidateID)
	}
	if plan.HREnrollment != nil {
		t.Error("reviewing save should not enroll with HR")
	}
}

func TestJoiningProbabilityThreshold(t *testing.T) {
	cases := []struct {
		percent    *int64
		wantTicket bool
	}{
		{nil, false},
		{intPtr(0), true},
		{intPtr(45), true},
		{intPtr(59), true},
		{intPtr(60), false},
		{intPtr(61), false},
		{intPtr(100), false},
	}

	for _, tc := range cases {
		candidate := Candidate{
			ID:                        3,
			FirstName:                 "Ravi",
			LastName:                  "Iyer",
			Status:                    StatusJoiningProbability,
			JoiningProbabilityPercent: tc.percent,
		}

		plan := planCandidateSideEffects(candidate)

		got := len(plan.Tickets) == 1
		if got != tc.wantTicket {
			label := "nil"
			if tc.percent != nil {
				label = strconv.FormatInt(*tc.percent, 10)
			}
			t.Errorf("percent=%s: ticket planned=%v, want %v", label, got, tc.wantTicket)
		}
	}
}

// Side effects are not deduplicated: planning the same payload twice plans the
// same tickets twice. This is the behavior the front end was built against.
func TestRepeatedSavePlansRepeatedTickets(t *testing.T) {
	candidate := Candidate{ID: 9, FirstName: "Meera", LastName: "Nair", Status: StatusReviewing}

	first := planCandidateSideEffects(candidate)
	second := planCandidateSideEffects(candidate)

	if len(first.Tickets) != 1 || len(second.Tickets) != 1 {
		t.Fatalf("each save should plan its own ticket: %d then %d", len(first.Tickets), len(second.Tickets))
	}
}

// The concrete scenario from the lifecycle contract: followup1 -> mark as
// joiningProbability plans nothing; then a save at 45% plans the alert ticket.
func TestFollowupToJoiningProbabilityScenario(t *testing.T) {
	candidate := Candidate{
		ID:        42,
		FirstName: "Divya",
		LastName:  "Singh",
		Status:    StatusJoiningProbability,
	}

	plan := planCandidateSideEffects(candidate)
	if len(plan.Tickets) != 0 {
		t.Fatalf("status change alone should plan no tickets, got %d", len(plan.Tickets))
	}

	candidate.JoiningProbabilityPercent = intPtr(45)

	plan = planCandidateSideEffects(candidate)
	if len(plan.Tickets) != 1 {
		t.Fatalf("expected the low probability ticket, got %d", len(plan.Tickets))
	}

	wantTitle := "Low Joining Probability Alert - Divya Singh"
	if !strings.Contains(plan.Tickets[0].Title, wantTitle) {
		t.Errorf("title = %q, want it to contain %q", plan.Tickets[0].Title, wantTitle)
	}
}

func TestComplianceFlagsPlanHREnrollment(t *testing.T) {
	candidate := Candidate{
		ID:         11,
		FirstName:  "Kunal",
		LastName:   "Shah",
		Email:      "kunal@example.com",
		Status:     StatusJoin,
		ESICStatus: boolPtr(true),
		ESICDate:   "08/01/2026",
	}

	plan := planCandidateSideEffects(candidate)

	if plan.HREnrollment == nil {
		t.Fatal("expected an HR enrollment in the plan")
	}
	if plan.HREnrollment.ESICStatus == nil || !*plan.HREnrollment.ESICStatus {
		t.Error("enrollment body should carry esicStatus true")
	}
	if plan.HREnrollment.CandidateID != candidate.ID {
		t.Errorf("enrollment candidateId = %d, want %d", plan.HREnrollment.CandidateID, candidate.ID)
	}

	// a false flag alone does not enroll
	candidate.ESICStatus = boolPtr(false)
	plan = planCandidateSideEffects(candidate)
	if plan.HREnrollment != nil {
		t.Error("false compliance flags should not enroll")
	}
}

// No server-side stage guard exists: compliance flags on a record that never
// reached join still plan the enrollment. Asserted as current behavior, not as
// a desirable property.
func TestComplianceFlagsAreNotStageGuarded(t *testing.T) {
	candidate := Candidate{
		ID:       12,
		Status:   StatusPending,
		PFStatus: boolPtr(true),
	}

	plan := planCandidateSideEffects(candidate)
	if plan.HREnrollment == nil {
		t.Error("enrollment should be planned regardless of stage")
	}
}

// Zimyo grant has no idempotency guard: a second grant overwrites the date.
func TestZimyoGrantOverwritesOnRepeat(t *testing.T) {
	candidate := Candidate{ID: 5, FirstName: "Asha", LastName: "Verma"}

	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	applyZimyoGrant(&candidate, first)

	if candidate.ZimyoAccessGranted == nil || !*candidate.ZimyoAccessGranted {
		t.Fatal("grant should set zimyoAccessGranted")
	}
	if candidate.ZimyoAccessDate != "08/01/2026" {
		t.Fatalf("zimyoAccessDate = %q", candidate.ZimyoAccessDate)
	}

	second := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	applyZimyoGrant(&candidate, second)

	if candidate.ZimyoAccessDate != "08/15/2026" {
		t.Errorf("second grant should overwrite the date, got %q", candidate.ZimyoAccessDate)
	}
}
