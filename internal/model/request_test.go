package model

import "testing"

func TestBatchResultCounts(t *testing.T) {
	result := BatchResult{
		Outcomes: []DownloadOutcome{
			{Status: OutcomeSucceeded},
			{Status: OutcomeFailed, ErrorKind: ErrorKindNetwork},
			{Status: OutcomeSucceeded},
		},
	}

	if result.FailedCount() != 1 {
		t.Errorf("Expected 1 failed outcome, got %d", result.FailedCount())
	}

	if result.AllSucceeded() {
		t.Error("Expected AllSucceeded to be false with a failed outcome")
	}

	allOK := BatchResult{Outcomes: []DownloadOutcome{{Status: OutcomeSucceeded}}}
	if !allOK.AllSucceeded() {
		t.Error("Expected AllSucceeded to be true")
	}

	empty := BatchResult{}
	if !empty.AllSucceeded() {
		t.Error("Expected empty batch to report AllSucceeded")
	}
}
