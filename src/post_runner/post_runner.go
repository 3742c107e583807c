package post_runner

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PostScript is one unit of post-installation work.
//
//go:generate mockery -name PostScript -inpkg
type PostScript interface {
	// Name identifies the script in the logs.
	Name() string

	// Priority orders the scripts within a run, lowest first.
	Priority() int

	// Run does the work. The logger already carries the script fields.
	Run(log logrus.FieldLogger) error
}

// RunnerBuilder contains the data and logic needed to create a runner for the
// post-installation scripts. Don't create instances of this type directly,
// use the NewRunner function instead.
type RunnerBuilder struct {
	logger  *logrus.Logger
	scripts []PostScript
}

// Runner runs a fixed set of post-installation scripts in priority order,
// once, sequentially. Don't create instances of this type directly, use the
// NewRunner function instead.
type Runner struct {
	logger  *logrus.Logger
	scripts []PostScript
}

// NewRunner creates a builder that can then be used to configure and create a
// runner. The scripts run in ascending priority order, mirroring the numeric
// prefixes of the script files installers traditionally ship. A script that
// fails is logged and reported, but never prevents the remaining scripts from
// running: at this point of the installation there is nothing better to do
// than to try everything and tell the user what went wrong.
func NewRunner() *RunnerBuilder {
	return &RunnerBuilder{}
}

// Logger sets the logger that the runner will use to write messages to the
// log. This is mandatory.
func (b *RunnerBuilder) Logger(value *logrus.Logger) *RunnerBuilder {
	b.logger = value
	return b
}

// Script adds one script to the runner.
func (b *RunnerBuilder) Script(value PostScript) *RunnerBuilder {
	b.scripts = append(b.scripts, value)
	return b
}

// Scripts adds a list of scripts to the runner.
func (b *RunnerBuilder) Scripts(values ...PostScript) *RunnerBuilder {
	b.scripts = append(b.scripts, values...)
	return b
}

// Build uses the data stored in the builder to create a new runner. Note that
// this doesn't run the scripts, to do that use the Run method.
func (b *RunnerBuilder) Build() (result *Runner, err error) {
	// Check parameters:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}

	// Copy the scripts to avoid potential side effects if the builder is
	// changed after creating the object:
	scripts := make([]PostScript, len(b.scripts))
	copy(scripts, b.scripts)
	sort.SliceStable(scripts, func(i, j int) bool {
		return scripts[i].Priority() < scripts[j].Priority()
	})

	// Create and populate the object:
	result = &Runner{
		logger:  b.logger,
		scripts: scripts,
	}
	return
}

// Run executes all the scripts in priority order and returns the aggregate of
// their failures, or nil when every script succeeded.
func (r *Runner) Run() error {
	var multiErr error
	for _, script := range r.scripts {
		scriptLogger := r.logger.WithFields(logrus.Fields{
			"script":   script.Name(),
			"priority": script.Priority(),
		})
		scriptLogger.Info("Post-installation script started")
		err := script.Run(scriptLogger)
		if err != nil {
			scriptLogger.WithError(err).Error("Post-installation script failed")
			multiErr = multierror.Append(multiErr, errors.Wrap(err, script.Name()))
		} else {
			scriptLogger.Info("Post-installation script succeeded")
		}
	}
	return multiErr
}
