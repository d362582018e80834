package entities

import "testing"

func readyRecords() ContestantRecords {
	return ContestantRecords{
		ContestantID: "cont-1",
		Onboarding: OnboardingRecord{
			FullName: "Amara Okafor",
			Email:    "amara@starcast.live",
		},
		Compliance: ComplianceRecord{
			DocumentRef:   "passport-123",
			TermsAccepted: true,
			DataConsent:   true,
		},
		Media: []MediaAsset{
			{AssetID: "a1", Kind: MediaKindProfilePhoto},
			{AssetID: "a2", Kind: MediaKindIntroVideo},
		},
		Profile: PublicProfile{
			DisplayName: "Amara",
			Biography:   "Vocalist from London",
			Category:    "vocal",
		},
	}
}

func TestScoreReadinessFullChecklist(t *testing.T) {
	report := ScoreReadiness(readyRecords())
	if report.Score != 100 {
		t.Fatalf("expected 100, got %d", report.Score)
	}
	if len(report.Checks) != 5 {
		t.Fatalf("expected 5 checks, got %d", len(report.Checks))
	}
	for _, check := range report.Checks {
		if !check.Passed {
			t.Fatalf("check %q unexpectedly failed", check.Key)
		}
	}
}

func TestScoreReadinessMovesInStepsOfTwenty(t *testing.T) {
	records := readyRecords()
	records.Media = []MediaAsset{{AssetID: "a2", Kind: MediaKindIntroVideo}}
	report := ScoreReadiness(records)
	if report.Score != 80 {
		t.Fatalf("expected 80 with one check failing, got %d", report.Score)
	}

	records.Compliance.DataConsent = false
	report = ScoreReadiness(records)
	if report.Score != 60 {
		t.Fatalf("expected 60 with two checks failing, got %d", report.Score)
	}
}

func TestScoreReadinessEmptyWorkspace(t *testing.T) {
	report := ScoreReadiness(ContestantRecords{})
	if report.Score != 0 {
		t.Fatalf("expected 0 for an empty workspace, got %d", report.Score)
	}
}

func TestConsentGateRequiresBothFlags(t *testing.T) {
	records := readyRecords()
	records.Compliance.TermsAccepted = false
	for _, check := range ScoreReadiness(records).Checks {
		if check.Key == "compliance_consents" && check.Passed {
			t.Fatalf("compliance check must fail with terms_accepted=false")
		}
	}
}
