package entities

import (
	"math"
	"strings"
)

type ReadinessCheck struct {
	Key    string
	Title  string
	Passed bool
}

type ReadinessReport struct {
	Score  int
	Checks []ReadinessCheck
}

// ScoreReadiness evaluates the fixed completion checklist against the
// current records. Pure computation: no caching, no side effects.
func ScoreReadiness(records ContestantRecords) ReadinessReport {
	var hasPhoto, hasVideo bool
	for _, asset := range records.Media {
		switch asset.Kind {
		case MediaKindProfilePhoto:
			hasPhoto = true
		case MediaKindIntroVideo:
			hasVideo = true
		}
	}

	checks := []ReadinessCheck{
		{
			Key:   "onboarding_identity",
			Title: "Full name and email on file",
			Passed: strings.TrimSpace(records.Onboarding.FullName) != "" &&
				strings.TrimSpace(records.Onboarding.Email) != "",
		},
		{
			Key:    "profile_photo",
			Title:  "At least one profile photo uploaded",
			Passed: hasPhoto,
		},
		{
			Key:    "intro_video",
			Title:  "Intro video reference attached",
			Passed: hasVideo,
		},
		{
			Key:   "compliance_consents",
			Title: "Consents given and identity document referenced",
			Passed: records.Compliance.ConsentsComplete() &&
				strings.TrimSpace(records.Compliance.DocumentRef) != "",
		},
		{
			Key:   "public_profile",
			Title: "Display name, biography and category filled in",
			Passed: strings.TrimSpace(records.Profile.DisplayName) != "" &&
				strings.TrimSpace(records.Profile.Biography) != "" &&
				strings.TrimSpace(records.Profile.Category) != "",
		},
	}

	passed := 0
	for _, check := range checks {
		if check.Passed {
			passed++
		}
	}
	score := int(math.Round(float64(passed) / float64(len(checks)) * 100))
	return ReadinessReport{Score: score, Checks: checks}
}
