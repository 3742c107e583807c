package copy_logs

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/thoas/go-funk"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/util"
)

const (
	// NoSaveKickstartMarker asks for the input kickstart not to be preserved.
	NoSaveKickstartMarker = "/tmp/NOSAVE_INPUT_KS"
	// NoSaveLogsMarker asks for the installation logs not to be preserved.
	NoSaveLogsMarker = "/tmp/NOSAVE_LOGS"
	// InputKickstartPath is where the installer keeps the kickstart it ran.
	InputKickstartPath = "/run/install/ks.cfg"
	// KickstartDestPath is the preserved kickstart, relative to the sysroot.
	KickstartDestPath = "root/original-ks.cfg"
	// LogsDestDir receives the installer logs, relative to the sysroot.
	LogsDestDir = "var/log/anaconda"

	installerLogsDir    = "/tmp"
	preInstallerLogsDir = "/tmp/pre-anaconda-logs"
	dnfDebugDataDir     = "/tmp/dnf.libdnf"
	scriptLogPattern    = "ks-script*.log"
	journalLogName      = "journal.log"
)

// The log set the installer writes under /tmp. Our own log file is not on the
// list and is never preserved.
var installerLogFiles = []string{
	"anaconda.log",
	"syslog",
	"X.log",
	"program.log",
	"packaging.log",
	"storage.log",
	"ifcfg.log",
	"lvm.log",
	"dnf.librepo.log",
	"hawkey.log",
	"dbus.log",
}

// LogsCopier preserves the installation logs and the input kickstart in the
// installed system. Every step is best-effort: a failed copy is logged and
// never stops the remaining ones.
type LogsCopier struct {
	config       *config.PostConfig
	filesystem   afero.Fs
	dependencies util.IDependencies
}

func NewLogsCopier(cfg *config.PostConfig, filesystem afero.Fs, dependencies util.IDependencies) *LogsCopier {
	return &LogsCopier{
		config:       cfg,
		filesystem:   filesystem,
		dependencies: dependencies,
	}
}

func (c *LogsCopier) Name() string {
	return "copy-logs"
}

func (c *LogsCopier) Priority() int {
	return 99
}

func (c *LogsCopier) Run(log logrus.FieldLogger) error {
	var multiErr error
	if err := c.PreserveLogs(log); err != nil {
		multiErr = multierror.Append(multiErr, err)
	}
	if err := c.PreserveKickstart(log); err != nil {
		multiErr = multierror.Append(multiErr, err)
	}
	return multiErr
}

// consumeNoSaveMarker removes the marker when it is present. A present marker
// means the corresponding artifact must not land in the installed system.
func (c *LogsCopier) consumeNoSaveMarker(marker string, log logrus.FieldLogger) (found bool, err error) {
	exists, err := afero.Exists(c.filesystem, marker)
	if err != nil {
		log.WithError(err).Warnf("Failed to check %s, assuming it is absent", marker)
		return false, nil
	}
	if !exists {
		return false, nil
	}
	log.Infof("Found %s, removing it", marker)
	if err := c.filesystem.Remove(marker); err != nil {
		log.WithError(err).Errorf("Failed to remove %s", marker)
		return true, err
	}
	return true, nil
}

// PreserveKickstart copies the kickstart the installation ran into the
// installed system, unless the nosave marker says otherwise. At most one of
// the marker removal and the copy happens on a single run.
func (c *LogsCopier) PreserveKickstart(log logrus.FieldLogger) error {
	found, err := c.consumeNoSaveMarker(NoSaveKickstartMarker, log)
	if found || err != nil {
		return err
	}

	exists, err := afero.Exists(c.filesystem, InputKickstartPath)
	if err != nil {
		log.WithError(err).Errorf("Failed to check %s", InputKickstartPath)
		return err
	}
	if !exists {
		log.Infof("No input kickstart at %s, nothing to preserve", InputKickstartPath)
		return nil
	}

	dest := filepath.Join(c.config.Sysroot, KickstartDestPath)
	// The destination directory is not created here. Losing the copy on an
	// unusual target is fine, writing outside the prepared system is not.
	if err := util.CopyFile(c.filesystem, InputKickstartPath, dest, 0o600); err != nil {
		log.WithError(err).Errorf("Failed to copy %s to %s", InputKickstartPath, dest)
		return err
	}
	log.Infof("Preserved the input kickstart at %s", dest)
	return nil
}

// PreserveLogs copies the installer log set into <sysroot>/var/log/anaconda,
// unless the nosave marker says otherwise.
func (c *LogsCopier) PreserveLogs(log logrus.FieldLogger) error {
	found, err := c.consumeNoSaveMarker(NoSaveLogsMarker, log)
	if found || err != nil {
		return err
	}

	destDir := filepath.Join(c.config.Sysroot, LogsDestDir)
	if err := util.CreateFolderIfNotExist(c.filesystem, destDir); err != nil {
		log.WithError(err).Errorf("Failed to create directory %s", destDir)
		return err
	}

	var multiErr error
	for _, src := range c.collectLogSources(log) {
		dest := filepath.Join(destDir, filepath.Base(src))
		if err := util.CopyFile(c.filesystem, src, dest, 0o600); err != nil {
			log.WithError(err).Errorf("Failed to copy %s to %s", src, dest)
			multiErr = multierror.Append(multiErr, err)
		}
	}

	if err := c.captureBootJournal(destDir, log); err != nil {
		multiErr = multierror.Append(multiErr, err)
	}

	for _, dir := range []string{preInstallerLogsDir, dnfDebugDataDir} {
		if err := c.copyLogTree(dir, destDir, log); err != nil {
			multiErr = multierror.Append(multiErr, err)
		}
	}

	if err := c.restrictLogAccess(destDir, log); err != nil {
		multiErr = multierror.Append(multiErr, err)
	}
	return multiErr
}

// collectLogSources returns the installer log files that actually exist:
// the fixed log set plus the logs of the kickstart scripts that ran.
func (c *LogsCopier) collectLogSources(log logrus.FieldLogger) []string {
	sources := funk.Map(installerLogFiles, func(name string) string {
		return filepath.Join(installerLogsDir, name)
	}).([]string)
	matches, err := afero.Glob(c.filesystem, filepath.Join(installerLogsDir, scriptLogPattern))
	if err != nil {
		log.WithError(err).Errorf("Failed to glob %s", scriptLogPattern)
	}
	sources = append(sources, matches...)
	return funk.FilterString(sources, func(src string) bool {
		exists, err := afero.Exists(c.filesystem, src)
		return err == nil && exists
	})
}

// captureBootJournal stores the journal of the current boot next to the
// copied installer logs.
func (c *LogsCopier) captureBootJournal(destDir string, log logrus.FieldLogger) error {
	dest := filepath.Join(destDir, journalLogName)
	log.Infof("Capturing the boot journal into %s", dest)
	stderr, exitCode := c.dependencies.ExecuteOutputToFile(dest, "journalctl", "-b")
	if exitCode != 0 {
		err := errors.Errorf(stderr)
		log.WithError(err).Errorf("Failed to run journalctl command")
		return err
	}
	return nil
}

// copyLogTree copies the directory src into destDir under its own name.
// A missing source directory is the common case and not an error.
func (c *LogsCopier) copyLogTree(src string, destDir string, log logrus.FieldLogger) error {
	exists, err := afero.DirExists(c.filesystem, src)
	if err != nil || !exists {
		return nil
	}
	dest := filepath.Join(destDir, filepath.Base(src))
	log.Infof("Copying %s to %s", src, dest)
	if err := util.CopyTree(c.filesystem, src, dest); err != nil {
		log.WithError(err).Errorf("Failed to copy %s to %s", src, dest)
		return err
	}
	return nil
}

// restrictLogAccess chmods every direct entry of destDir to 0600,
// subdirectories included, and restores the SELinux labels. The destination
// carries the sysroot prefix, so restorecon runs outside the chroot.
func (c *LogsCopier) restrictLogAccess(destDir string, log logrus.FieldLogger) error {
	var multiErr error
	entries, err := afero.ReadDir(c.filesystem, destDir)
	if err != nil {
		log.WithError(err).Errorf("Failed to list %s", destDir)
		multiErr = multierror.Append(multiErr, err)
	}
	for _, entry := range entries {
		name := filepath.Join(destDir, entry.Name())
		if err := c.filesystem.Chmod(name, os.FileMode(0o600)); err != nil {
			log.WithError(err).Errorf("Failed to chmod %s", name)
			multiErr = multierror.Append(multiErr, err)
		}
	}
	if _, stderr, exitCode := c.dependencies.Execute("restorecon", "-ir", destDir); exitCode != 0 {
		err := errors.Errorf(stderr)
		log.WithError(err).Errorf("Failed to restore the SELinux contexts of %s", destDir)
		multiErr = multierror.Append(multiErr, err)
	}
	return multiErr
}
