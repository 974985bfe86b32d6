package semantic

import "testing"

func TestNearestNameFindsCloseMatch(t *testing.T) {
	name, ok := nearestName("coutn", []string{"count", "total", "index"})
	if !ok || name != "count" {
		t.Fatalf("nearestName(coutn) = (%q, %v), want (count, true)", name, ok)
	}
}

func TestNearestNameNoMatchBelowThreshold(t *testing.T) {
	_, ok := nearestName("zzz", []string{"count", "total", "index"})
	if ok {
		t.Error("nearestName(zzz) ok = true, want false (nothing close enough)")
	}
}

func TestNearestNameIgnoresExactMatch(t *testing.T) {
	// the target itself should never be offered as its own suggestion.
	_, ok := nearestName("count", []string{"count"})
	if ok {
		t.Error("nearestName should not suggest the target back to itself")
	}
}

func TestNearestNameEmptyCandidates(t *testing.T) {
	_, ok := nearestName("count", nil)
	if ok {
		t.Error("nearestName with no candidates should return ok=false")
	}
}
