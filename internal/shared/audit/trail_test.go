package audit

import (
	"fmt"
	"testing"
)

func TestAppendOrdersNewestFirst(t *testing.T) {
	trail := NewTrail(10)
	trail.Append("onboarding_updated", "full name changed")
	trail.Append("profile_updated", "bio changed")

	items := trail.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].Action != "profile_updated" {
		t.Fatalf("expected newest entry first, got %s", items[0].Action)
	}
	if items[0].EntryID == "" || items[0].CreatedAt.IsZero() {
		t.Fatal("expected entry id and timestamp to be stamped")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	trail := NewTrail(100)
	for i := 0; i < 101; i++ {
		trail.Append("media_added", fmt.Sprintf("asset %d", i))
	}

	items := trail.List()
	if len(items) != 100 {
		t.Fatalf("expected trail capped at 100, got %d", len(items))
	}
	if items[0].Detail != "asset 100" {
		t.Fatalf("expected newest entry retained, got %s", items[0].Detail)
	}
	for _, item := range items {
		if item.Detail == "asset 0" {
			t.Fatal("expected oldest entry evicted")
		}
	}
}
