package play

import "time"

// MessageLog keeps time-stamped display lines, newest first.
type MessageLog struct {
	lines []string
	max   int
}

// NewMessageLog returns a log holding at most max lines.
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{max: max}
}

// Add prepends msg stamped with now. Empty messages are dropped.
func (l *MessageLog) Add(now time.Time, msg string) {
	if msg == "" {
		return
	}
	line := now.Format("15:04:05") + " — " + msg
	l.lines = append([]string{line}, l.lines...)
	if len(l.lines) > l.max {
		l.lines = l.lines[:l.max]
	}
}

// Lines returns the log, newest first.
func (l *MessageLog) Lines() []string { return l.lines }
