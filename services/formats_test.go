package services

import "testing"

func TestLookupFormatFallsBackToBP(t *testing.T) {
	f := LookupFormat("freestyle_rap_battle")
	if f.Key != DefaultFormatKey {
		t.Errorf("fallback key = %s, want %s", f.Key, DefaultFormatKey)
	}
}

func TestFormatCatalogShape(t *testing.T) {
	formats := ListFormats()
	if len(formats) != 5 {
		t.Fatalf("catalog size = %d, want 5", len(formats))
	}
	for _, f := range formats {
		if len(f.SpeechOrder) != 8 {
			t.Errorf("%s speech order length = %d, want 8", f.Key, len(f.SpeechOrder))
		}
		if f.POIAllowed && f.POITimeWindow == [2]int{} {
			t.Errorf("%s allows POIs without a time window", f.Key)
		}
	}

	bp := LookupFormat("british_parliamentary")
	if bp.Teams != 4 || bp.SpeakersPerTeam != 2 {
		t.Errorf("BP team shape = %d teams x %d", bp.Teams, bp.SpeakersPerTeam)
	}
	policy := LookupFormat("policy_debate")
	if policy.POIAllowed {
		t.Errorf("policy debate should not allow POIs")
	}
}
