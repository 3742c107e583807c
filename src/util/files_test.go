package util

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

var _ = Describe("File helpers", func() {

	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
	})

	writeFile := func(name string, content string, mode os.FileMode) {
		Expect(afero.WriteFile(fs, name, []byte(content), mode)).To(Succeed())
	}

	readFile := func(name string) string {
		content, err := afero.ReadFile(fs, name)
		Expect(err).NotTo(HaveOccurred())
		return string(content)
	}

	Context("CopyFile", func() {
		It("copies the content and sets the mode", func() {
			writeFile("/tmp/anaconda.log", "installer said things\n", 0o644)

			Expect(CopyFile(fs, "/tmp/anaconda.log", "/target/anaconda.log", 0o600)).To(Succeed())
			Expect(readFile("/target/anaconda.log")).To(Equal("installer said things\n"))
			info, err := fs.Stat("/target/anaconda.log")
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("re-modes a destination that already exists", func() {
			writeFile("/src", "new", 0o644)
			writeFile("/dest", "old", 0o777)

			Expect(CopyFile(fs, "/src", "/dest", 0o600)).To(Succeed())
			Expect(readFile("/dest")).To(Equal("new"))
			info, err := fs.Stat("/dest")
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("fails on a missing source", func() {
			Expect(CopyFile(fs, "/nowhere", "/dest", 0o600)).NotTo(Succeed())
		})
	})

	Context("CopyTree", func() {
		It("copies nested directories and keeps file modes", func() {
			writeFile("/tmp/pre-anaconda-logs/lorax-packages.log", "lorax\n", 0o600)
			writeFile("/tmp/pre-anaconda-logs/nested/program.log", "program\n", 0o644)

			Expect(CopyTree(fs, "/tmp/pre-anaconda-logs", "/target/pre-anaconda-logs")).To(Succeed())
			Expect(readFile("/target/pre-anaconda-logs/lorax-packages.log")).To(Equal("lorax\n"))
			Expect(readFile("/target/pre-anaconda-logs/nested/program.log")).To(Equal("program\n"))
			info, err := fs.Stat("/target/pre-anaconda-logs/lorax-packages.log")
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("fails on a missing source", func() {
			Expect(CopyTree(fs, "/nowhere", "/target")).NotTo(Succeed())
		})
	})

	Context("CreateFolderIfNotExist", func() {
		It("creates a missing folder with its parents", func() {
			Expect(CreateFolderIfNotExist(fs, "/var/log/anaconda")).To(Succeed())
			found, err := afero.DirExists(fs, "/var/log/anaconda")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
		})

		It("leaves an existing folder alone", func() {
			Expect(fs.MkdirAll(filepath.Join("/var/log", "anaconda"), 0o700)).To(Succeed())
			Expect(CreateFolderIfNotExist(fs, "/var/log/anaconda")).To(Succeed())
			info, err := fs.Stat("/var/log/anaconda")
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o700)))
		})
	})
})
