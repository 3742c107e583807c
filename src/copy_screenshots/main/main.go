package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/copy_screenshots"
	"github.com/rhinstaller/anaconda-post/src/util"
)

func main() {
	cfg := config.ProcessArgs()
	util.SetLogging("copy-screenshots", cfg.TextLogging, cfg.JournalLogging)
	screenshotsCopier := copy_screenshots.NewScreenshotsCopier(cfg, afero.NewOsFs())
	if err := screenshotsCopier.Run(log.StandardLogger()); err != nil {
		log.WithError(err).Error("Failed to preserve the installation screenshots")
		os.Exit(1)
	}
}
