package main

import (
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
)

func TestBuildDisclosureFeedFormatsPipeLines(t *testing.T) {
	disclosures := []Disclosure{
		{ID: 7, Title: "Q1 Vendor Spend", Category: "vendor", Period: "2026-Q1", Amount: 125000.5, ReleasedDate: "04/10/2026"},
		{ID: 9, Title: "Audit Fees", Category: "audit", Period: "2026-Q1", Amount: 8000, ReleasedDate: "04/12/2026"},
	}

	feed := buildDisclosureFeed(disclosures)

	lines := strings.Split(strings.TrimRight(feed, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v: %q", len(lines), feed)
	}

	want := "DISC|7|Q1 Vendor Spend|vendor|2026-Q1|125000.50|04/10/2026"
	if lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}

	if !strings.HasSuffix(feed, "\r\n") {
		t.Error("feed should end with CRLF")
	}
}

func TestBuildDisclosureFeedEmpty(t *testing.T) {
	if feed := buildDisclosureFeed(nil); feed != "" {
		t.Errorf("empty input should build empty feed, got %q", feed)
	}
}

func TestPayrollExportRowsCSVHeader(t *testing.T) {
	rows := payrollExportRows([]PayrollRecord{
		{EmployeeName: "Divya Singh", Month: "2026-08", GrossPay: 90000, Deductions: 12000, NetPay: 78000, Status: PayrollStatusPaid, PaidDate: "08/31/2026"},
	})

	csvBytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		t.Fatalf("MarshalBytes err: %v", err)
	}

	out := string(csvBytes)
	if !strings.HasPrefix(out, "Employee Name,Month,Gross Pay,Deductions,Net Pay,Status,Paid Date") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Divya Singh,2026-08,90000,12000,78000,paid,08/31/2026") {
		t.Errorf("row missing from output: %q", out)
	}
}
