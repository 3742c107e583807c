package config

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

var _ = Describe("Installer configuration file", func() {
	var (
		fs  afero.Fs
		cfg PostConfig
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		cfg = DefaultPostConfig
	})

	writeConf := func(content string) {
		err := afero.WriteFile(fs, DefaultConfFile, []byte(content), 0o644)
		Expect(err).NotTo(HaveOccurred())
	}

	It("reads the target root and the logging switches", func() {
		writeConf(`
[Installation Target]
physical_root = /mnt/install-root

[Post Scripts]
text_logging = false
journal_logging = true
`)
		err := loadConfFile(fs, DefaultConfFile, &cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Sysroot).To(Equal("/mnt/install-root"))
		Expect(cfg.TextLogging).To(BeFalse())
		Expect(cfg.JournalLogging).To(BeTrue())
	})

	It("fails on a missing file and keeps the defaults", func() {
		err := loadConfFile(fs, DefaultConfFile, &cfg)
		Expect(err).To(HaveOccurred())
		Expect(cfg).To(Equal(DefaultPostConfig))
	})

	It("keeps the defaults for absent sections and keys", func() {
		writeConf(`
[Installation Target]
can_touch_runtime_system_files = false
`)
		err := loadConfFile(fs, DefaultConfFile, &cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(DefaultPostConfig))
	})

	It("keeps a logging switch whose value does not parse", func() {
		writeConf(`
[Post Scripts]
text_logging = sometimes
`)
		err := loadConfFile(fs, DefaultConfFile, &cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.TextLogging).To(Equal(DefaultPostConfig.TextLogging))
	})

	It("fails on a broken section header", func() {
		writeConf("[Installation Target\nphysical_root = /mnt/sysimage\n")
		err := loadConfFile(fs, DefaultConfFile, &cfg)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Configuration precedence", func() {
	var (
		origArgs  []string
		origFlags *flag.FlagSet
		confDir   string
	)

	BeforeEach(func() {
		origArgs = os.Args
		origFlags = flag.CommandLine
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		var err error
		confDir, err = ioutil.TempDir("", "post-scripts-conf")
		Expect(err).NotTo(HaveOccurred())
		os.Args = []string{"post-script", "-conf", filepath.Join(confDir, "post-scripts.conf")}
		Expect(os.Unsetenv("ANA_INSTALL_PATH")).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Unsetenv("ANA_INSTALL_PATH")).To(Succeed())
		Expect(os.RemoveAll(confDir)).To(Succeed())
		flag.CommandLine = origFlags
		os.Args = origArgs
	})

	writeConf := func(content string) {
		err := ioutil.WriteFile(filepath.Join(confDir, "post-scripts.conf"), []byte(content), 0o644)
		Expect(err).NotTo(HaveOccurred())
	}

	It("falls back to the built-in defaults", func() {
		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal(DefaultSysroot))
		Expect(cfg.TextLogging).To(BeTrue())
		Expect(cfg.JournalLogging).To(BeTrue())
	})

	It("prefers the conf file over the defaults", func() {
		writeConf("[Installation Target]\nphysical_root = /mnt/from-conf\n")

		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal("/mnt/from-conf"))
	})

	It("prefers the environment over the conf file", func() {
		writeConf("[Installation Target]\nphysical_root = /mnt/from-conf\n")
		Expect(os.Setenv("ANA_INSTALL_PATH", "/mnt/from-env")).To(Succeed())

		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal("/mnt/from-env"))
	})

	It("prefers an explicit flag over the environment", func() {
		Expect(os.Setenv("ANA_INSTALL_PATH", "/mnt/from-env")).To(Succeed())
		os.Args = append(os.Args, "-sysroot", "/mnt/from-flag")

		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal("/mnt/from-flag"))
	})

	It("treats an empty environment value as unset", func() {
		Expect(os.Setenv("ANA_INSTALL_PATH", "")).To(Succeed())

		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal(DefaultSysroot))
	})

	It("keeps the conf file sysroot when the environment value is empty", func() {
		writeConf("[Installation Target]\nphysical_root = /mnt/from-conf\n")
		Expect(os.Setenv("ANA_INSTALL_PATH", "")).To(Succeed())

		cfg := ProcessArgs()
		Expect(cfg.Sysroot).To(Equal("/mnt/from-conf"))
	})

	It("lets the conf file turn a logging switch off", func() {
		writeConf("[Post Scripts]\ntext_logging = false\n")

		cfg := ProcessArgs()
		Expect(cfg.TextLogging).To(BeFalse())
		Expect(cfg.JournalLogging).To(BeTrue())
	})

	It("prefers an explicit logging flag over the conf file", func() {
		writeConf("[Post Scripts]\ntext_logging = false\n")
		os.Args = append(os.Args, "-with-text-logging")

		cfg := ProcessArgs()
		Expect(cfg.TextLogging).To(BeTrue())
	})
})

func TestSubsystem(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config unit tests")
}
