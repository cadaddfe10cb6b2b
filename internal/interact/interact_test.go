package interact_test

import (
	"testing"

	"slipstream/internal/interact"
	"slipstream/internal/segment"
)

func actionsAt(starts ...int) []segment.Action {
	out := make([]segment.Action, len(starts))
	for i, s := range starts {
		out[i] = segment.Action{FrameStart: s, FrameEnd: s + 1}
	}
	return out
}

func pairStarts(initiations, responses []segment.Action, pairs []interact.Interaction) [][2]int {
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{initiations[p.Initiation].FrameStart, responses[p.Response].FrameStart}
	}
	return out
}

func TestAlignOverlappingExchanges(t *testing.T) {
	initiations := actionsAt(10, 50, 90)
	responses := actionsAt(5, 40, 60, 95)

	got := pairStarts(initiations, responses, interact.Align(initiations, responses))
	want := [][2]int{{10, 40}, {90, 95}}
	if len(got) != len(want) {
		t.Fatalf("got pairs %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pair %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAlignResponseMustFollow(t *testing.T) {
	// every response starts at or before the only initiation
	initiations := actionsAt(100)
	responses := actionsAt(10, 50, 100)
	if pairs := interact.Align(initiations, responses); len(pairs) != 0 {
		t.Fatalf("got %d pairs, want none", len(pairs))
	}
}

func TestAlignSimpleTrade(t *testing.T) {
	initiations := actionsAt(10)
	responses := actionsAt(20, 30)
	pairs := interact.Align(initiations, responses)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Initiation != 0 || pairs[0].Response != 0 {
		t.Fatalf("got pair %+v, want indices (0, 0)", pairs[0])
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	some := actionsAt(1, 2, 3)
	if pairs := interact.Align(nil, some); pairs != nil {
		t.Fatalf("got %v for empty initiations", pairs)
	}
	if pairs := interact.Align(some, nil); pairs != nil {
		t.Fatalf("got %v for empty responses", pairs)
	}
	if pairs := interact.Align(nil, nil); pairs != nil {
		t.Fatalf("got %v for empty inputs", pairs)
	}
}
