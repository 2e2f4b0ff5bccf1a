package main

import (
	"fmt"
	"time"
)

// Candidate lifecycle stages as the front end sends them. The server does not
// enforce an ordering between them: any save may carry any stage, last write
// wins. The intended progression is
// pending -> reviewing/interviewed -> welcome -> joiningProbability ->
// followup1 -> accepted -> join -> rejected.
//
// "rejected" doubles as the late "AL Released" terminal label; the two cases
// are told apart only by olReleasedDate being populated. Kept as one value
// for wire compatibility with the existing clients.
const (
	StatusPending            = "pending"
	StatusReviewing          = "reviewing"
	StatusInterviewed        = "interviewed"
	StatusWelcome            = "welcome"
	StatusJoiningProbability = "joiningProbability"
	StatusFollowup1          = "followup1"
	StatusAccepted           = "accepted"
	StatusJoin               = "join"
	StatusRejected           = "rejected"
)

// exclusive: 59 alerts, 60 does not
const lowJoiningProbabilityThreshold = 60

type sideEffectPlan struct {
	Tickets      []Ticket
	HREnrollment *HREnrollmentPost
}

// planCandidateSideEffects decides what a save of this payload triggers. The
// plan depends only on the saved record, never on the previous row, so saving
// the same payload twice plans the same side effects twice. That is the
// contract the front end was built against: nothing is deduplicated.
func planCandidateSideEffects(candidate Candidate) sideEffectPlan {
	plan := sideEffectPlan{}

	if candidate.Status == StatusReviewing {
		plan.Tickets = append(plan.Tickets, Ticket{
			Title:              fmt.Sprintf("Candidate Review Required - %s %s", candidate.FirstName, candidate.LastName),
			Description:        fmt.Sprintf("Candidate %d (%s %s) has moved to the reviewing stage and needs a screening call scheduled.", candidate.ID, candidate.FirstName, candidate.LastName),
			Priority:           TicketPriorityHigh,
			Category:           "recruitment",
			RelatedCandidateID: &candidate.ID,
			Status:             TicketStatusOpen,
		})
	}

	if candidate.JoiningProbabilityPercent != nil && *candidate.JoiningProbabilityPercent < lowJoiningProbabilityThreshold {
		plan.Tickets = append(plan.Tickets, Ticket{
			Title:              fmt.Sprintf("Low Joining Probability Alert - %s %s", candidate.FirstName, candidate.LastName),
			Description:        fmt.Sprintf("Candidate %d reported a joining probability of %d%%, below the %d%% threshold. Follow up before the expected joining date.", candidate.ID, *candidate.JoiningProbabilityPercent, lowJoiningProbabilityThreshold),
			Priority:           TicketPriorityHigh,
			Category:           "recruitment",
			RelatedCandidateID: &candidate.ID,
			Status:             TicketStatusOpen,
		})
	}

	if anyComplianceFlagSet(candidate) {
		enrollment := buildHREnrollment(candidate)
		plan.HREnrollment = &enrollment
	}

	return plan
}

func anyComplianceFlagSet(candidate Candidate) bool {
	for _, flag := range []*bool{candidate.ESICStatus, candidate.PFStatus, candidate.TDSStatus, candidate.MedicalStatus} {
		if flag != nil && *flag {
			return true
		}
	}
	return false
}

// runCandidateSideEffects executes the plan after the primary save committed.
// Every leg is best effort: a ticket insert or enrollment POST that fails is
// logged and dropped, the caller is never told. No retries anywhere.
func runCandidateSideEffects(candidate Candidate) {
	plan := planCandidateSideEffects(candidate)

	for i := range plan.Tickets {
		ticket := plan.Tickets[i]
		ticket.Created = time.Now().Unix()

		err := dbmap.Insert(&ticket)
		if err != nil {
			ErrorLog.Println("side effect ticket Insert err: ", err)
			continue
		}

		go sendTicketAlertEmail(ticket)
	}

	if plan.HREnrollment != nil {
		err := postHREnrollment(secrets.HR_API_BASE, *plan.HREnrollment)
		if err != nil {
			ErrorLog.Println("postHREnrollment err: ", err)
		}
	}
}

// applyZimyoGrant mutates the record for the dedicated grant action. Calling
// it again simply overwrites the date.
func applyZimyoGrant(candidate *Candidate, now time.Time) {
	granted := true
	candidate.ZimyoAccessGranted = &granted
	candidate.ZimyoAccessDate = now.Format("01/02/2006")
}
