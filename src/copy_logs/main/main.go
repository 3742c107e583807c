package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/copy_logs"
	"github.com/rhinstaller/anaconda-post/src/util"
)

func main() {
	cfg := config.ProcessArgs()
	util.SetLogging("copy-logs", cfg.TextLogging, cfg.JournalLogging)
	logsCopier := copy_logs.NewLogsCopier(cfg, afero.NewOsFs(), util.NewDependencies())
	if err := logsCopier.Run(log.StandardLogger()); err != nil {
		log.WithError(err).Error("Failed to preserve some installation artifacts")
		os.Exit(1)
	}
}
