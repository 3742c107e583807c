package util

//go:generate mockery -name IDependencies -inpkg
type IDependencies interface {
	Execute(command string, args ...string) (stdout string, stderr string, exitCode int)
	ExecuteOutputToFile(outputFilePath string, command string, args ...string) (stderr string, exitCode int)
	ExecuteInSysroot(sysroot string, command string, args ...string) (stdout string, stderr string, exitCode int)
}

type Dependencies struct{}

func (d *Dependencies) Execute(command string, args ...string) (stdout string, stderr string, exitCode int) {
	return Execute(command, args...)
}

func (d *Dependencies) ExecuteOutputToFile(outputFilePath string, command string, args ...string) (stderr string, exitCode int) {
	return ExecuteOutputToFile(outputFilePath, command, args...)
}

func (d *Dependencies) ExecuteInSysroot(sysroot string, command string, args ...string) (stdout string, stderr string, exitCode int) {
	return ExecuteInSysroot(sysroot, command, args...)
}

func NewDependencies() IDependencies {
	return &Dependencies{}
}
