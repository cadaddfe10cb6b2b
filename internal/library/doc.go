// Package library maintains the replay index: a SQLite database of match
// metadata for every replay in the configured directory. Scans are
// incremental; a file whose size and modification time are unchanged is
// served from the index without re-reading it. A file lock serializes
// writers so concurrent invocations cannot interleave schema or row writes.
package library
