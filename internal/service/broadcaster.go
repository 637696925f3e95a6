package service

// WebSocket message types pushed to a user's connections
const (
	MsgAnswerSaved         = "answer_saved"
	MsgInstrumentCompleted = "instrument_completed"
	MsgReportReady         = "report_ready"
	MsgReportFailed        = "report_failed"
)

// Notifier interface for WebSocket pushes (avoids import cycle)
type Notifier interface {
	NotifyUser(userID string, msgType string, payload interface{})
}
