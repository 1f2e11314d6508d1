package event

// EventSchemaVersion is the current schema version stamped onto events
const EventSchemaVersion = "1.0"

// Log message formats
const (
	LogMsgHandlerErrorFormat = "%d handler error(s) for event %s: %v"
)
