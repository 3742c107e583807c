package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/copy_logs"
	"github.com/rhinstaller/anaconda-post/src/copy_screenshots"
	"github.com/rhinstaller/anaconda-post/src/post_runner"
	"github.com/rhinstaller/anaconda-post/src/set_file_contexts"
	"github.com/rhinstaller/anaconda-post/src/util"
)

func main() {
	cfg := config.ProcessArgs()
	util.SetLogging("post-scripts", cfg.TextLogging, cfg.JournalLogging)

	filesystem := afero.NewOsFs()
	dependencies := util.NewDependencies()
	runner, err := post_runner.NewRunner().
		Logger(log.StandardLogger()).
		Script(set_file_contexts.NewFileContextsRestorer(cfg, filesystem, dependencies)).
		Script(copy_screenshots.NewScreenshotsCopier(cfg, filesystem)).
		Script(copy_logs.NewLogsCopier(cfg, filesystem, dependencies)).
		Build()
	if err != nil {
		log.WithError(err).Error("Failed to create the post-installation runner")
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		// Every failure has been logged by the runner already.
		os.Exit(1)
	}
}
