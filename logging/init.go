package logging

import (
	"fmt"
	"os"

	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/container/hashmap"
	"github.com/lattica-robotics/rcutils-go/errstate"
)

// Initialize initializes the logging system with the default allocator. It
// is idempotent: calling it again after a successful call is a no-op.
func Initialize() error {
	return InitializeWithAllocator(allocator.DefaultAllocator())
}

// InitializeWithAllocator initializes the logging system: it installs the
// output handler built by the factory passed to RegisterDefaultOutputHandler
// (none if no factory is registered), reads the RCUTILS_LOGGING_* and
// RCUTILS_CONSOLE_* environment variables described in spec.md §6, compiles
// the configured (or default) output format template, and prepares the
// per-logger severity map.
func InitializeWithAllocator(alloc allocator.Allocator) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return nil
	}
	if !allocator.IsValid(alloc) {
		return errstate.New(errstate.InvalidArgument, "logging: initialize: provided allocator is invalid")
	}
	g.alloc = alloc
	g.outputHandler = nil
	g.defaultLoggerLevel = Info

	if lineBuffered := os.Getenv("RCUTILS_CONSOLE_STDOUT_LINE_BUFFERED"); lineBuffered != "" {
		fmt.Fprintln(os.Stderr, "RCUTILS_CONSOLE_STDOUT_LINE_BUFFERED is now ignored. "+
			"Please set RCUTILS_LOGGING_USE_STDOUT and RCUTILS_LOGGING_BUFFERED_STREAM "+
			"to control the stream and the buffering of log messages.")
	}

	useStdout, err := envZeroOrOne("RCUTILS_LOGGING_USE_STDOUT")
	if err != nil {
		// An invalid value falls back to stderr rather than aborting
		// initialization.
		useStdout = envEmpty
	}
	if useStdout == envOne {
		g.outputStream = os.Stdout
	} else {
		g.outputStream = os.Stderr
	}

	// RCUTILS_LOGGING_BUFFERED_STREAM exists in the original to select
	// unbuffered vs line-buffered stdio via setvbuf; Go's os.Stdout/Stderr
	// are unbuffered at the io.Writer level regardless, so there is nothing
	// for this module to configure here beyond validating the variable.
	if _, err := envZeroOrOne("RCUTILS_LOGGING_BUFFERED_STREAM"); err != nil {
		return err
	}

	colorized, err := envZeroOrOne("RCUTILS_COLORIZED_OUTPUT")
	if err != nil {
		return err
	}
	switch colorized {
	case envZero:
		g.colorMode = ForceNoColor
	case envOne:
		g.colorMode = ForceColor
	default:
		g.colorMode = AutoColor
	}

	outputFormat := os.Getenv("RCUTILS_CONSOLE_OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = defaultOutputFormat
	}
	if len(outputFormat) > maxOutputFormatLen-1 {
		outputFormat = outputFormat[:maxOutputFormatLen-1]
	}
	g.outputFormat = outputFormat
	g.formatParts = compileFormat(outputFormat)

	if defaultHandlerFactory != nil {
		g.outputHandler = defaultHandlerFactory(g.outputStream, g.colorMode, alloc)
	}

	severities, err := hashmap.New[string, int](2, hashmap.StringHasher, hashmap.StringEqual)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize map for logger severities [%v]. Severities will not be configurable.\n", err)
		g.severitiesValid = false
		return errstate.New(errstate.Error, "logging: initialize: failed to initialize severity map")
	}
	g.severities = severities
	g.severitiesValid = true
	g.initialized = true
	return nil
}

// Shutdown releases the logging system's resources and clears its
// configuration, so Initialize may be called again. It is a no-op if the
// system was never initialized.
func Shutdown() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return nil
	}
	g.severities = nil
	g.severitiesValid = false
	g.formatParts = nil
	g.outputFormat = ""
	g.outputHandler = nil
	g.outputStream = nil
	g.defaultLoggerLevel = Unset
	g.alloc = nil
	g.initialized = false
	return nil
}

// IsInitialized reports whether Initialize/InitializeWithAllocator has
// succeeded without an intervening Shutdown.
func IsInitialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.initialized
}

// SetOutputHandler installs handler as the receiver for every log record
// whose logger is enabled at the record's severity. Passing nil disables
// output entirely. autoinit runs first if the system hasn't been
// initialized yet.
func SetOutputHandler(handler OutputHandler) {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outputHandler = handler
}

// autoinit mirrors RCUTILS_LOGGING_AUTOINIT: every public entry point that
// touches global state calls this first, so a caller that never explicitly
// initializes still gets a working (default-configured) logger.
func autoinit() {
	if IsInitialized() {
		return
	}
	if err := Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "logging: autoinit failed: %v\n", err)
	}
}

type envTristate int

const (
	envEmpty envTristate = iota
	envZero
	envOne
)

// envZeroOrOne parses an environment variable expected to hold "", "0", or
// "1", matching rcutils_get_env_var_zero_or_one's contract. Any other value
// is an error, written to stderr and returned.
func envZeroOrOne(name string) (envTristate, error) {
	v := os.Getenv(name)
	switch v {
	case "":
		return envEmpty, nil
	case "0":
		return envZero, nil
	case "1":
		return envOne, nil
	default:
		msg := fmt.Sprintf("unexpected value [%s] specified for %s. Valid values are 0 or 1.", v, name)
		fmt.Fprintln(os.Stderr, msg)
		return envEmpty, errstate.New(errstate.InvalidArgument, "logging: "+msg)
	}
}
