package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// DefaultSysroot is where the installer mounts the target system when no
	// configuration says otherwise.
	DefaultSysroot = "/mnt/sysimage"

	// DefaultConfFile carries the installer settings the hooks care about.
	DefaultConfFile = "/etc/anaconda/post-scripts.conf"
)

// PostConfig holds the settings shared by all post-installation hooks.
// Resolution order, later sources win: built-in defaults, the installer
// configuration file, environment, command line flags. The sysroot is taken
// as-is; hooks never verify that it points at a mounted system.
type PostConfig struct {
	Sysroot        string `envconfig:"ANA_INSTALL_PATH"`
	TextLogging    bool
	JournalLogging bool
}

var DefaultPostConfig = PostConfig{
	Sysroot:        DefaultSysroot,
	TextLogging:    true,
	JournalLogging: true,
}

func printHelpAndExit() {
	flag.CommandLine.Usage()
	os.Exit(0)
}

// loadConfFile folds the installer configuration file into cfg. Missing file,
// sections or keys leave cfg untouched.
func loadConfFile(fs afero.Fs, fname string, cfg *PostConfig) error {
	content, err := afero.ReadFile(fs, fname)
	if err != nil {
		return err
	}
	f, err := ini.Load(content)
	if err != nil {
		return err
	}
	if key, err := f.Section("Installation Target").GetKey("physical_root"); err == nil {
		cfg.Sysroot = key.String()
	}
	if key, err := f.Section("Post Scripts").GetKey("text_logging"); err == nil {
		cfg.TextLogging = key.MustBool(cfg.TextLogging)
	}
	if key, err := f.Section("Post Scripts").GetKey("journal_logging"); err == nil {
		cfg.JournalLogging = key.MustBool(cfg.JournalLogging)
	}
	return nil
}

// ProcessArgs resolves the hook configuration from the configuration file,
// the ANA_INSTALL_PATH environment variable and the command line.
func ProcessArgs() *PostConfig {
	ret := &PostConfig{}
	defaults := DefaultPostConfig

	var confFile string
	flag.StringVar(&confFile, "conf", DefaultConfFile, "Installer configuration file")
	flag.StringVar(&ret.Sysroot, "sysroot", defaults.Sysroot, "Mount point of the installed system")
	flag.BoolVar(&ret.TextLogging, "with-text-logging", defaults.TextLogging, "Output log to file")
	flag.BoolVar(&ret.JournalLogging, "with-journal-logging", defaults.JournalLogging, "Use journal logging")
	h := flag.Bool("help", false, "Help message")
	flag.Parse()
	if h != nil && *h {
		printHelpAndExit()
	}

	if err := loadConfFile(afero.NewOsFs(), confFile, &defaults); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", confFile, err)
	}
	confSysroot := defaults.Sysroot
	if err := envconfig.Process("anaconda", &defaults); err != nil {
		fmt.Fprintf(os.Stderr, "envconfig error: %v\n", err)
		os.Exit(1)
	}
	// An empty ANA_INSTALL_PATH behaves like an unset one.
	if defaults.Sysroot == "" {
		defaults.Sysroot = confSysroot
	}
	if defaults.Sysroot == "" {
		defaults.Sysroot = DefaultSysroot
	}

	// Only flags given on the command line override the other sources.
	seen := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if !seen["sysroot"] {
		ret.Sysroot = defaults.Sysroot
	}
	if !seen["with-text-logging"] {
		ret.TextLogging = defaults.TextLogging
	}
	if !seen["with-journal-logging"] {
		ret.JournalLogging = defaults.JournalLogging
	}
	return ret
}
