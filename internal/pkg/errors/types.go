package errors

// ErrorType classifies application errors so callers can branch on the
// kind of failure without string matching.
type ErrorType int

const (
	// Unknown is the zero value. Avoid creating errors with it directly;
	// it only shows up when an external error could not be classified.
	Unknown ErrorType = iota

	// Internal marks a bug in our own logic (unexpected nil, impossible state).
	Internal

	// System marks an infrastructure-level failure (disk I/O, missing file).
	System

	// InvalidInput marks a failed validation of caller-supplied values.
	InvalidInput

	// NotFound marks a missing resource.
	NotFound

	// ParsingFailed marks a data decoding or format-conversion failure.
	ParsingFailed

	// Unavailable marks a temporarily unusable service or resource.
	Unavailable
)

var errorTypeNames = map[ErrorType]string{
	Unknown:       "Unknown",
	Internal:      "Internal",
	System:        "System",
	InvalidInput:  "InvalidInput",
	NotFound:      "NotFound",
	ParsingFailed: "ParsingFailed",
	Unavailable:   "Unavailable",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}
