package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// Flags select optional parts of every log line.
const (
	// LogFlagLongFile adds the full path and line of the logging call.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile adds the file name and line of the logging call. It
	// wins over LogFlagLongFile.
	LogFlagShortFile
)

var logFlagNames = map[string]uint32{
	"longfile":  LogFlagLongFile,
	"shortfile": LogFlagShortFile,
}

// parseLogFlags reads a comma separated list of flag names, ignoring names it
// does not know.
func parseLogFlags(value string) uint32 {
	var flags uint32
	for _, name := range strings.Split(value, ",") {
		flags |= logFlagNames[strings.TrimSpace(name)]
	}
	return flags
}

// RotationSettings control when a log file is rolled and how many rolled
// files are kept.
type RotationSettings struct {
	ThresholdKB int64
	MaxRolls    int
}

// DefaultRotation rolls log files at 10 MB and keeps the last three.
var DefaultRotation = RotationSettings{ThresholdKB: 10 * 1000, MaxRolls: 3}

const (
	backendIdle int32 = iota
	backendRunning
	backendClosed
)

// Backend fans log lines out to its sinks. A single goroutine started by Run
// does all the writing, so lines never interleave inside a sink.
type Backend struct {
	flags   uint32
	state   int32 // atomic
	sinks   []sink
	entries chan logEntry
	drained chan struct{}
}

type logEntry struct {
	line  []byte
	level Level
}

// sink is a destination receiving the lines at or above minLevel.
type sink struct {
	io.WriteCloser
	minLevel Level
}

// NewBackendWithFlags returns an idle Backend formatting lines with flags.
func NewBackendWithFlags(flags uint32) *Backend {
	return &Backend{
		flags:   flags,
		entries: make(chan logEntry),
		drained: make(chan struct{}),
	}
}

// NewBackend returns an idle Backend with the flags named in the LOGFLAGS
// environment variable.
func NewBackend() *Backend {
	return NewBackendWithFlags(parseLogFlags(os.Getenv("LOGFLAGS")))
}

// AddLogWriter adds writer as a sink for lines at or above logLevel. Sinks
// can only be added before Run.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	if atomic.LoadInt32(&b.state) != backendIdle {
		return errors.New("sinks can only be added before the logger runs")
	}
	b.sinks = append(b.sinks, sink{WriteCloser: writer, minLevel: logLevel})
	return nil
}

// AddLogFile adds a log file rotated with DefaultRotation as a sink for lines
// at or above logLevel.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddRotatedLogFile(logFile, logLevel, DefaultRotation)
}

// AddRotatedLogFile adds logFile, rotated according to rotation, as a sink
// for lines at or above logLevel. Missing directories are created.
func (b *Backend) AddRotatedLogFile(logFile string, logLevel Level, rotation RotationSettings) error {
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", dir)
		}
	}
	fileRotator, err := rotator.New(logFile, rotation.ThresholdKB, false, rotation.MaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to rotate %s", logFile)
	}
	return b.AddLogWriter(fileRotator, logLevel)
}

// Run starts writing lines to the sinks. It fails if the backend already ran.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapInt32(&b.state, backendIdle, backendRunning) {
		return errors.New("the logger was already started")
	}
	go b.writeEntries()
	return nil
}

func (b *Backend) writeEntries() {
	defer close(b.drained)
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error in the log writer: %+v\n%s", err, debug.Stack())
		}
	}()
	for entry := range b.entries {
		for _, s := range b.sinks {
			if entry.level >= s.minLevel {
				_, _ = s.Write(entry.line)
			}
		}
	}
}

// IsRunning returns whether the backend accepts lines.
func (b *Backend) IsRunning() bool {
	return atomic.LoadInt32(&b.state) == backendRunning
}

// Close writes out the pending lines and closes every sink.
func (b *Backend) Close() {
	if atomic.CompareAndSwapInt32(&b.state, backendRunning, backendClosed) {
		close(b.entries)
		<-b.drained
	} else {
		atomic.StoreInt32(&b.state, backendClosed)
	}
	for _, s := range b.sinks {
		_ = s.Close()
	}
}

func (b *Backend) dispatch(level Level, line []byte) {
	b.entries <- logEntry{line: line, level: level}
}

// Logger returns a logger for subsystemTag writing through b. It starts with
// LevelOff.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: LevelOff, tag: subsystemTag, b: b}
}
