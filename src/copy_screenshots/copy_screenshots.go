package copy_screenshots

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/util"
)

const (
	// ScreenshotsSourceDir is where the installer drops its screenshots.
	ScreenshotsSourceDir = "/tmp/anaconda-screenshots"
	// ScreenshotsDestDir receives them, relative to the sysroot.
	ScreenshotsDestDir = "root/anaconda-screenshots"
)

var screenshotPattern = glob.MustCompile("*.png")

// ScreenshotsCopier preserves the screenshots taken during the installation
// in the home of the root user of the installed system. Screenshots may show
// passwords being typed, hence the tight modes.
type ScreenshotsCopier struct {
	config     *config.PostConfig
	filesystem afero.Fs
}

func NewScreenshotsCopier(cfg *config.PostConfig, filesystem afero.Fs) *ScreenshotsCopier {
	return &ScreenshotsCopier{
		config:     cfg,
		filesystem: filesystem,
	}
}

func (c *ScreenshotsCopier) Name() string {
	return "copy-screenshots"
}

func (c *ScreenshotsCopier) Priority() int {
	return 90
}

func (c *ScreenshotsCopier) Run(log logrus.FieldLogger) error {
	exists, err := afero.DirExists(c.filesystem, ScreenshotsSourceDir)
	if err != nil {
		log.WithError(err).Errorf("Failed to check %s", ScreenshotsSourceDir)
		return err
	}
	if !exists {
		log.Infof("No screenshots were taken during this installation, nothing to do")
		return nil
	}
	entries, err := afero.ReadDir(c.filesystem, ScreenshotsSourceDir)
	if err != nil {
		log.WithError(err).Errorf("Failed to list %s", ScreenshotsSourceDir)
		return err
	}
	if len(entries) == 0 {
		log.Infof("%s is empty, nothing to do", ScreenshotsSourceDir)
		return nil
	}

	destDir := filepath.Join(c.config.Sysroot, ScreenshotsDestDir)
	if err := c.filesystem.MkdirAll(destDir, 0o750); err != nil {
		log.WithError(err).Errorf("Failed to create directory %s", destDir)
		return err
	}
	// MkdirAll leaves the mode of a pre-existing directory alone.
	if err := c.filesystem.Chmod(destDir, 0o750); err != nil {
		log.WithError(err).Errorf("Failed to chmod %s", destDir)
		return err
	}

	var multiErr error
	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || !screenshotPattern.Match(entry.Name()) {
			continue
		}
		src := filepath.Join(ScreenshotsSourceDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		if err := util.CopyFile(c.filesystem, src, dest, 0o640); err != nil {
			log.WithError(err).Errorf("Failed to copy %s to %s", src, dest)
			multiErr = multierror.Append(multiErr, err)
			continue
		}
		copied++
	}
	log.Infof("Preserved %d screenshots in %s", copied, destDir)
	return multiErr
}
