// Package logging constructs the application's slog loggers. It offers a
// human-oriented console handler and a machine-oriented JSON handler, both
// selected and leveled through configuration, plus small attribute helpers
// so call sites never import log/slog directly.
package logging
