package util

import (
	bytes2 "bytes"
	"os/exec"

	"github.com/google/renameio"
	log "github.com/sirupsen/logrus"
)

func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch value := err.(type) {
	case *exec.ExitError:
		return value.ExitCode()
	default:
		return -1
	}
}

func getErrorStr(err error, stderr *bytes2.Buffer) string {
	b := stderr.Bytes()
	if len(b) > 0 {
		return string(b)
	} else if err != nil {
		return err.Error()
	}
	return ""
}

func Execute(command string, args ...string) (stdout string, stderr string, exitCode int) {
	cmd := exec.Command(command, args...)
	var stdoutBytes, stderrBytes bytes2.Buffer
	cmd.Stdout = &stdoutBytes
	cmd.Stderr = &stderrBytes
	err := cmd.Run()
	return string(stdoutBytes.Bytes()), getErrorStr(err, &stderrBytes), getExitCode(err)
}

// ExecuteOutputToFile runs the command with stdout redirected to outputFilePath.
// The output file is replaced atomically once the command has finished, so an
// interrupted run never leaves a truncated file behind.
func ExecuteOutputToFile(outputFilePath string, command string, args ...string) (stderr string, exitCode int) {
	t, err := renameio.TempFile("", outputFilePath)
	if err != nil {
		log.WithError(err).Errorf("Failed to create a temp file for %s", outputFilePath)
		return err.Error(), -1
	}

	defer func() {
		if err1 := t.Cleanup(); err1 != nil {
			log.WithError(err1).Errorf("Unable to clean up temp file %s", t.Name())
		}
	}()

	cmd := exec.Command(command, args...)
	var stderrBytes bytes2.Buffer
	cmd.Stdout = t
	cmd.Stderr = &stderrBytes
	err = cmd.Run()
	if err1 := t.CloseAtomicallyReplace(); err1 != nil {
		log.WithError(err1).Errorf("Failed to replace output file %s", outputFilePath)
		if err == nil {
			return err1.Error(), -1
		}
	}
	return getErrorStr(err, &stderrBytes), getExitCode(err)
}

// ExecuteInSysroot runs the command chrooted into the installed system tree.
func ExecuteInSysroot(sysroot string, command string, args ...string) (stdout string, stderr string, exitCode int) {
	chrootArgs := append([]string{sysroot, command}, args...)
	return Execute("chroot", chrootArgs...)
}
