package util

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rhinstaller/anaconda-post/pkg/journalLogger"
	"github.com/sirupsen/logrus"
)

// Installer logs live under /tmp while the installation runs. Keeping ours
// there as well means the preservation hooks never pick up their own output,
// since it is not part of the installer log set.
const logsDir = "/tmp"

var getLogFileWriter = func(name string) (io.Writer, error) {
	fname := filepath.Join(logsDir, name+".log")
	return os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

func setLogging(logger *logrus.Logger, journalWriter journalLogger.IJournalWriter, name string, textLogging bool, journalLogging bool) {
	logger.SetFormatter(&logrus.TextFormatter{})
	if textLogging {
		writer, err := getLogFileWriter(name)
		if err == nil {
			logger.SetOutput(writer)
		} else {
			logger.SetOutput(ioutil.Discard)
		}
	} else {
		logger.SetOutput(ioutil.Discard)
	}
	if journalLogging {
		journalLogger.SetJournalLogging(logger, journalWriter, map[string]interface{}{
			"TAG": name,
		})
	}
}

// SetLogging directs the standard logger to /tmp/<name>.log, to the journal,
// to both or to neither, according to the logging switches.
func SetLogging(name string, textLogging bool, journalLogging bool) {
	setLogging(logrus.StandardLogger(), &journalLogger.JournalWriter{}, name, textLogging, journalLogging)
}
