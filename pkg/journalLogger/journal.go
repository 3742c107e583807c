package journalLogger

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ssgreg/journald"
)

//go:generate mockery -name IJournalWriter -inpkg
type IJournalWriter interface {
	Send(msg string, priority journald.Priority, fields map[string]interface{}) error
}

type JournalWriter struct{}

func (*JournalWriter) Send(msg string, priority journald.Priority, fields map[string]interface{}) error {
	return journald.Send(msg, priority, fields)
}

var levelsMap = map[logrus.Level]journald.Priority{
	logrus.PanicLevel: journald.PriorityCrit,
	logrus.FatalLevel: journald.PriorityCrit,
	logrus.ErrorLevel: journald.PriorityErr,
	logrus.WarnLevel:  journald.PriorityWarning,
	logrus.InfoLevel:  journald.PriorityInfo,
	logrus.DebugLevel: journald.PriorityDebug,
	logrus.TraceLevel: journald.PriorityDebug,
}

type JournalHook struct {
	writer IJournalWriter
	fields map[string]interface{}
}

func NewJournalHook(writer IJournalWriter, fields map[string]interface{}) *JournalHook {
	return &JournalHook{
		writer: writer,
		fields: fields,
	}
}

func (h *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *JournalHook) Fire(entry *logrus.Entry) error {
	priority, ok := levelsMap[entry.Level]
	if !ok {
		priority = journald.PriorityInfo
	}
	line, err := entry.String()
	if err != nil {
		return err
	}
	return h.writer.Send(strings.TrimSuffix(line, "\n"), priority, h.fields)
}

func SetJournalLogging(logger *logrus.Logger, writer IJournalWriter, fields map[string]interface{}) {
	logger.AddHook(NewJournalHook(writer, fields))
}
