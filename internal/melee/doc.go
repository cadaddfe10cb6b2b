// Package melee holds the game vocabulary shared by the decoder and the
// segmenter: raw animation state ids and their coarse classification,
// character and stage catalogs, costume colours, and the per-frame snapshot
// type replays decode into.
//
// The classification functions are pure lookups. Raw state ids outside the
// known catalogue degrade to BroadGenericInactionable instead of failing so
// that replays written by newer game revisions still segment.
package melee
