// Package interact pairs the action sequences of two competitors into
// initiation/response interactions. An interaction records that one player
// began an action and the other began a distinct action strictly after it;
// the pairing is positional only and makes no claim about causation.
package interact

import "slipstream/internal/segment"

// Interaction references one initiation/response pair by position:
// Initiation indexes the initiator's action sequence, Response the
// responder's. Indexing keeps the pair list cheap for full matches and lets
// callers pull whichever action fields they need.
type Interaction struct {
	Initiation int
	Response   int
}

// Align pairs initiations with responses. Both inputs must be ordered by
// start frame, which segmentation guarantees.
//
// A response is the first action of the responder beginning strictly after
// the initiation begins. Once a pair is recorded both sides are consumed:
// the next candidate initiation is the first one beginning after the
// responder's following action, so overlapping exchanges collapse to a
// single pair instead of fanning out.
func Align(initiations, responses []segment.Action) []Interaction {
	var out []Interaction

	i, j := 0, 0
	for i < len(initiations) && j < len(responses) {
		if responses[j].FrameStart <= initiations[i].FrameStart {
			j++
			continue
		}
		out = append(out, Interaction{Initiation: i, Response: j})
		j++
		if j == len(responses) {
			break
		}
		cutoff := responses[j].FrameStart
		for i < len(initiations) && initiations[i].FrameStart <= cutoff {
			i++
		}
	}
	return out
}
