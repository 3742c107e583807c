package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/set_file_contexts"
	"github.com/rhinstaller/anaconda-post/src/util"
)

func main() {
	cfg := config.ProcessArgs()
	util.SetLogging("set-file-contexts", cfg.TextLogging, cfg.JournalLogging)
	restorer := set_file_contexts.NewFileContextsRestorer(cfg, afero.NewOsFs(), util.NewDependencies())
	if err := restorer.Run(log.StandardLogger()); err != nil {
		log.WithError(err).Error("Failed to restore the file contexts of the installed system")
		os.Exit(1)
	}
}
