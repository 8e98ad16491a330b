package workflow

const ShiftEndedSignalName = "shift-ended"

// ShiftEndedSignal tells a session its shift was closed through the API, so
// the max-duration timer can be dropped.
type ShiftEndedSignal struct {
	Reason      string `json:"reason"`
	ForceClosed bool   `json:"force_closed"`
}
