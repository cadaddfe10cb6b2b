// Command slipstream analyzes Slippi replay files: it indexes a replay
// directory, segments each competitor's frames into high-level actions, and
// pairs the two action sequences into initiation/response interactions.
package main
