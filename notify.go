package signpad

import (
	"context"
	"log/slog"
)

// Severity classifies a Notice for display.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "info",
	SeveritySuccess: "success",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// Status messages reported by a Pad.
const (
	MsgUndo           = "Undo successful"
	MsgRedo           = "Redo successful"
	MsgCleared        = "Canvas cleared"
	MsgBackground     = "Pad color updated"
	MsgDownloaded     = "Signature downloaded!"
	MsgRecovered      = "Signature recovered"
	MsgNoSaved        = "No saved signature found"
	MsgSaveFailed     = "Could not save signature"
	MsgRestoreFailed  = "Could not restore drawing"
	MsgDownloadFailed = "Could not download signature"
)

// Notice is a transient status message for the user.
type Notice struct {
	Severity Severity
	Message  string
}

// Notifier receives notices. A Pad calls Notify from its worker
// goroutine, so implementations must not block for long.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier writes notices to the package logger. Errors and warnings
// log at Warn, everything else at Info.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(n Notice) {
	level := slog.LevelInfo
	if n.Severity >= SeverityWarning {
		level = slog.LevelWarn
	}
	Logger().Log(context.Background(), level, n.Message, "severity", n.Severity.String())
}
