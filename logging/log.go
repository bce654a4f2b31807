package logging

import "fmt"

// Log is the public entry point every generated log call funnels through.
// It short-circuits on IsEnabledFor, then dispatches a formatted Record to
// the current output handler. location may be the zero Location when the
// caller has no source-position information to attach.
func Log(location Location, severity Level, name string, format string, args ...any) {
	autoinit()
	if !IsEnabledFor(name, severity) {
		return
	}

	timestamp := timeNow()

	g.mu.Lock()
	handler := g.outputHandler
	g.mu.Unlock()
	if handler == nil {
		return
	}

	handler(Record{
		Location:  location,
		Severity:  severity,
		Name:      name,
		Timestamp: timestamp,
		Message:   fmt.Sprintf(format, args...),
	})
}

// GetOutputHandler returns the currently installed handler, or nil if
// output is disabled. autoinit runs first, matching SetOutputHandler.
func GetOutputHandler() OutputHandler {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outputHandler
}

// FormatMessage runs the compiled output-format template over r, producing
// the same line the default console handler would write before
// colourization and the trailing newline. Custom handlers that only want to
// change where the line goes, not how it reads, can call this directly.
func FormatMessage(r Record) string {
	autoinit()
	g.mu.Lock()
	parts := g.formatParts
	g.mu.Unlock()
	return render(parts, r)
}

// Logger is a convenience wrapper binding a name so call sites don't have
// to repeat it. It carries no state of its own beyond the name: level
// configuration and the output handler remain process-global.
type Logger struct {
	Name string
}

// NewLogger returns a Logger bound to name.
func NewLogger(name string) Logger { return Logger{Name: name} }

func (l Logger) IsEnabledFor(severity Level) bool { return IsEnabledFor(l.Name, severity) }

func (l Logger) EffectiveLevel() Level { return GetEffectiveLevel(l.Name) }

func (l Logger) Log(location Location, severity Level, format string, args ...any) {
	Log(location, severity, l.Name, format, args...)
}

func (l Logger) Debug(location Location, format string, args ...any) {
	l.Log(location, Debug, format, args...)
}

func (l Logger) Info(location Location, format string, args ...any) {
	l.Log(location, Info, format, args...)
}

func (l Logger) Warn(location Location, format string, args ...any) {
	l.Log(location, Warn, format, args...)
}

func (l Logger) Error(location Location, format string, args ...any) {
	l.Log(location, Error, format, args...)
}

func (l Logger) Fatal(location Location, format string, args ...any) {
	l.Log(location, Fatal, format, args...)
}
