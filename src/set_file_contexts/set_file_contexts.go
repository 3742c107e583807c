package set_file_contexts

import (
	"path/filepath"

	"github.com/alessio/shellescape"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rhinstaller/anaconda-post/src/config"
	"github.com/rhinstaller/anaconda-post/src/util"
)

const restoreconCmd = "restorecon"

// Paths the installer writes or mounts over and that need their SELinux
// labels restored once the packages are in place. Relabelled recursively.
var recursivePaths = []string{
	"/etc/sysconfig/network-scripts",
	"/var/lib",
	"/etc/lvm",
	"/dev",
	"/etc/iscsi",
	"/var/lib/iscsi",
	"/root",
	"/var/lock",
	"/var/log",
	"/etc/modprobe.d",
	"/etc/sysconfig",
	"/var/cache/yum",
}

// Individual files touched during the installation, relabelled one by one.
// Entries may be glob patterns, resolved against the installed system.
var singlePaths = []string{
	"/etc/rpm/macros",
	"/etc/dasd.conf",
	"/etc/zfcp.conf",
	"/lib64",
	"/usr/lib64",
	"/etc/blkid.tab*",
	"/etc/mtab",
	"/etc/fstab",
	"/etc/resolv.conf",
	"/etc/modprobe.conf*",
	"/var/log/*tmp",
	"/etc/crypttab",
	"/etc/mdadm.conf",
	"/etc/sysconfig/network",
	"/etc/*shadow*",
	"/etc/dhcp/dhclient-*.conf",
	"/etc/localtime",
	"/root/install.log*",
}

// FileContextsRestorer fixes the SELinux contexts of the files the installer
// created or modified. restorecon runs chrooted into the installed system so
// that the labels come from the installed policy, not the installer's.
type FileContextsRestorer struct {
	config       *config.PostConfig
	filesystem   afero.Fs
	dependencies util.IDependencies
}

func NewFileContextsRestorer(cfg *config.PostConfig, filesystem afero.Fs, dependencies util.IDependencies) *FileContextsRestorer {
	return &FileContextsRestorer{
		config:       cfg,
		filesystem:   filesystem,
		dependencies: dependencies,
	}
}

func (r *FileContextsRestorer) Name() string {
	return "set-file-contexts"
}

func (r *FileContextsRestorer) Priority() int {
	return 80
}

func (r *FileContextsRestorer) Run(log logrus.FieldLogger) error {
	if !r.restoreconAvailable() {
		log.Warnf("No %s in the installed system, skipping the relabel", restoreconCmd)
		return nil
	}

	var multiErr error
	if paths := r.expandInSysroot(recursivePaths); len(paths) > 0 {
		if err := r.restorecon("-ir", paths, log); err != nil {
			multiErr = multierror.Append(multiErr, err)
		}
	}
	if paths := r.expandInSysroot(singlePaths); len(paths) > 0 {
		if err := r.restorecon("-i", paths, log); err != nil {
			multiErr = multierror.Append(multiErr, err)
		}
	}
	return multiErr
}

// restoreconAvailable reports whether the installed system carries the
// SELinux tooling. Targets installed without it have nothing to relabel.
func (r *FileContextsRestorer) restoreconAvailable() bool {
	for _, name := range []string{"usr/sbin/restorecon", "sbin/restorecon"} {
		exists, err := afero.Exists(r.filesystem, filepath.Join(r.config.Sysroot, name))
		if err == nil && exists {
			return true
		}
	}
	return false
}

// expandInSysroot resolves the path patterns against the installed system and
// returns the matches with the sysroot prefix stripped, ready to be passed to
// a chrooted command. Patterns without a match drop out.
func (r *FileContextsRestorer) expandInSysroot(patterns []string) []string {
	ret := make([]string, 0)
	for _, pattern := range patterns {
		matches, err := afero.Glob(r.filesystem, filepath.Join(r.config.Sysroot, pattern))
		if err != nil {
			continue
		}
		for _, match := range matches {
			rel, err := filepath.Rel(r.config.Sysroot, match)
			if err != nil {
				continue
			}
			ret = append(ret, "/"+rel)
		}
	}
	return ret
}

func (r *FileContextsRestorer) restorecon(mode string, paths []string, log logrus.FieldLogger) error {
	args := append([]string{mode}, paths...)
	log.Infof("Running %s in %s", shellescape.QuoteCommand(append([]string{restoreconCmd}, args...)), r.config.Sysroot)
	_, stderr, exitCode := r.dependencies.ExecuteInSysroot(r.config.Sysroot, restoreconCmd, args...)
	if exitCode != 0 {
		err := errors.Errorf(stderr)
		log.WithError(err).Errorf("Failed to restore the file contexts")
		return err
	}
	return nil
}
