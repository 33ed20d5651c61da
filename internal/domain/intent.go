package domain

type IntentKind string

const (
	IntentImmediate    IntentKind = "immediate"
	IntentDeferred     IntentKind = "deferred"
	IntentClarify      IntentKind = "clarify"
	IntentHelp         IntentKind = "help"
	IntentUnrecognized IntentKind = "unrecognized"
)

// Intent is the interpreter's classification of one text command. Only the
// fields relevant to Kind are populated: DeviceID and Action for immediate
// and deferred intents, Time and ScheduleID for deferred ones, Suggestion
// for clarifications.
type Intent struct {
	Kind       IntentKind
	DeviceID   string
	Action     Action
	Time       string
	ScheduleID string
	Suggestion string
}
