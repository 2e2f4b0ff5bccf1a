package main

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestWorkflow() Workflow {
	return Workflow{
		ID:       1,
		ClientID: 2,
		Name:     "Client Onboarding",
		Steps: WorkflowStepList{
			{Name: "Kickoff call"},
			{Name: "Document collection"},
			{Name: "Portal access"},
		},
	}
}

func TestCompleteWorkflowStepInOrder(t *testing.T) {
	workflow := newTestWorkflow()
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	if err := completeWorkflowStep(&workflow, 0, now); err != nil {
		t.Fatalf("step 0 should complete: %v", err)
	}
	if !workflow.Steps[0].Completed || workflow.Steps[0].CompletedAt != now.Unix() {
		t.Errorf("step 0 not marked: %+v", workflow.Steps[0])
	}

	if err := completeWorkflowStep(&workflow, 1, now); err != nil {
		t.Fatalf("step 1 should complete after step 0: %v", err)
	}
}

func TestCompleteWorkflowStepOutOfOrderRejected(t *testing.T) {
	workflow := newTestWorkflow()

	err := completeWorkflowStep(&workflow, 2, time.Now())
	if err == nil {
		t.Fatal("completing step 2 before 0 and 1 should fail")
	}
	if workflow.Steps[2].Completed {
		t.Error("rejected step should stay incomplete")
	}
}

func TestCompleteWorkflowStepRepeatRejected(t *testing.T) {
	workflow := newTestWorkflow()
	now := time.Now()

	if err := completeWorkflowStep(&workflow, 0, now); err != nil {
		t.Fatalf("first completion err: %v", err)
	}
	if err := completeWorkflowStep(&workflow, 0, now); err == nil {
		t.Fatal("second completion of the same step should fail")
	}
}

func TestCompleteWorkflowStepBounds(t *testing.T) {
	workflow := newTestWorkflow()

	if err := completeWorkflowStep(&workflow, -1, time.Now()); err == nil {
		t.Error("negative index should fail")
	}
	if err := completeWorkflowStep(&workflow, 3, time.Now()); err == nil {
		t.Error("index past the end should fail")
	}
}

func TestWorkflowStepListRoundTripsThroughColumn(t *testing.T) {
	steps := WorkflowStepList{
		{Name: "Kickoff call", Completed: true, CompletedAt: 1755600000},
		{Name: "Portal access"},
	}

	value, err := steps.Value()
	if err != nil {
		t.Fatalf("Value err: %v", err)
	}

	var restored WorkflowStepList
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan err: %v", err)
	}

	a, _ := json.Marshal(steps)
	b, _ := json.Marshal(restored)
	if string(a) != string(b) {
		t.Errorf("round trip mismatch: %s vs %s", a, b)
	}
}
