package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/container/hashmap"
)

// ColorMode controls whether OutputHandler implementations colorize their
// output. AutoColor defers to the handler's own TTY detection.
type ColorMode int

const (
	AutoColor ColorMode = iota
	ForceColor
	ForceNoColor
)

// OutputHandler receives every log record that passes its logger's
// effective-level check. The default, console.NewHandler, renders it
// through the compiled format template; a test or embedding application can
// install its own to capture or redirect records instead.
type OutputHandler func(Record)

// Record is everything an OutputHandler needs to render one log call.
type Record struct {
	Location  Location
	Severity  Level
	Name      string
	Timestamp time.Time
	Message   string
}

// Location is the call-site source position attached to a log record, the
// Go analogue of rcutils_log_location_t; the zero Location means no
// location. The format template's {function_name} and {file_name} tokens
// expand to their fields as they are, and {line_number} expands to nothing
// when all three fields are zero.
type Location struct {
	FunctionName string
	FileName     string
	LineNumber   int
}

// state is the logging package's process-wide configuration, guarded by mu.
// Every exported function that touches it takes the lock; this is the Go
// analogue of the original's collection of bare global variables; unlike
// the C original, concurrent callers are safe by construction rather than
// by convention.
type state struct {
	mu sync.Mutex

	initialized bool
	alloc       allocator.Allocator

	outputHandler OutputHandler
	outputStream  io.Writer
	colorMode     ColorMode
	outputFormat  string
	formatParts   []formatPart

	defaultLoggerLevel Level
	severities         *hashmap.HashMap[string, int]
	severitiesValid    bool
}

var g state

// timeNow is overridden in tests, matching the injectable-clock pattern
// used for testability elsewhere in this codebase.
var timeNow = time.Now

const defaultOutputFormat = "[{severity}] [{time}] [{name}]: {message}"

// maxOutputFormatLen mirrors RCUTILS_LOGGING_MAX_OUTPUT_FORMAT_LEN: a
// configured output format is truncated, not rejected, to
// maxOutputFormatLen-1 bytes (the C buffer's size less its terminator).
const maxOutputFormatLen = 2048

// maxFormatHandlers mirrors the original's implicit cap on the number of
// compiled template tokens/literals a single output format can produce;
// compileFormat stops appending and the excess is dropped once reached.
const maxFormatHandlers = 1024

// severityUserBit marks an entry in the severities map as explicitly set by
// a caller of SetLoggerLevel, as opposed to a cached entry added with the
// bit clear. GetEffectiveLevel does not add cached entries; it only reads
// the map. Levels are all multiples of 10, so the bottom bit is free for
// this purpose.
const severityUserBit = 0x1

func defaultOutputStream() io.Writer { return os.Stderr }

// defaultHandlerFactory builds the process's default output handler once a
// stream and colour mode are known. logging/console registers itself here
// from an init func, the same registration-by-side-effect idiom
// database/sql drivers and image decoders use, so this package never
// imports its own default handler's package (which in turn imports this
// one for Record/Level/ColorMode) and creates a cycle. A binary that never
// imports logging/console gets no default output handler and must call
// SetOutputHandler itself.
var defaultHandlerFactory func(stream io.Writer, mode ColorMode, alloc allocator.Allocator) OutputHandler

// RegisterDefaultOutputHandler installs factory as the builder Initialize
// uses for the process-wide default output handler. Called from
// logging/console's init func; not meant to be called from application
// code.
func RegisterDefaultOutputHandler(factory func(stream io.Writer, mode ColorMode, alloc allocator.Allocator) OutputHandler) {
	defaultHandlerFactory = factory
}
