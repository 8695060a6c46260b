package config

const (
	// MaxFilenameBaseLength is the longest download name, before the
	// extension, derived from a document title.
	MaxFilenameBaseLength = 50

	// DefaultMaxInputChars bounds the raw text accepted per request.
	// Large enough for a long memo, small enough to stay well inside the
	// model's context window together with the instructions.
	DefaultMaxInputChars = 20000

	// MaxHistoryLimit caps the page size of the generation history list.
	MaxHistoryLimit = 100

	// DefaultHistoryLimit is used when the client does not send a limit.
	DefaultHistoryLimit = 20
)
