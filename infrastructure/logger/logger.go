package logger

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger. Entries below the logger's level are dropped
// before they are formatted.
type Logger struct {
	lvl Level // atomic
	tag string
	b   *Backend
}

// Trace formats message using the default formats for its operands, prepends
// the prefix as necessary, and writes to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.Write(LevelTrace, args...)
}

// Tracef formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Writef(LevelTrace, format, args...)
}

// Debug writes to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.Write(LevelDebug, args...)
}

// Debugf writes to log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Writef(LevelDebug, format, args...)
}

// Info writes to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.Write(LevelInfo, args...)
}

// Infof writes to log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Writef(LevelInfo, format, args...)
}

// Warn writes to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.Write(LevelWarn, args...)
}

// Warnf writes to log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Writef(LevelWarn, format, args...)
}

// Error writes to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.Write(LevelError, args...)
}

// Errorf writes to log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Writef(LevelError, format, args...)
}

// Critical writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.Write(LevelCritical, args...)
}

// Criticalf writes to log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Writef(LevelCritical, format, args...)
}

// Write formats the operands with fmt.Sprint and logs them at logLevel.
func (l *Logger) Write(logLevel Level, args ...interface{}) {
	if l.Level() <= logLevel {
		l.print(logLevel, fmt.Sprint(args...))
	}
}

// Writef formats the operands with fmt.Sprintf and logs them at logLevel.
func (l *Logger) Writef(logLevel Level, format string, args ...interface{}) {
	if l.Level() <= logLevel {
		l.print(logLevel, fmt.Sprintf(format, args...))
	}
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(level))
}

// Backend returns the log backend
func (l *Logger) Backend() *Backend {
	return l.b
}

// normalLogSize is the capacity a line is formatted into.
const normalLogSize = 512

func (l *Logger) print(level Level, message string) {
	var file string
	var line int
	if l.b.flags&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flags)
	}

	buf := make([]byte, 0, normalLogSize)
	formatHeader(&buf, time.Now(), level.String(), l.tag, file, line)
	bytesBuf := bytes.NewBuffer(buf)
	bytesBuf.WriteString(message)
	bytesBuf.WriteByte('\n')

	// Without a running backend nothing drains the entries, so library code
	// used on its own only reports warnings and worse, to stderr.
	if !l.b.IsRunning() {
		if level >= LevelWarn {
			_, _ = os.Stderr.Write(bytesBuf.Bytes())
		}
		return
	}
	l.b.dispatch(level, bytesBuf.Bytes())
}

// formatHeader appends "2006-01-02 15:04:05.000 [LVL] TAG: file:line: " to buf.
func formatHeader(buf *[]byte, t time.Time, lvl, tag string, file string, line int) {
	*buf = t.AppendFormat(*buf, "2006-01-02 15:04:05.000")
	*buf = append(*buf, " ["...)
	*buf = append(*buf, lvl...)
	*buf = append(*buf, "] "...)
	*buf = append(*buf, tag...)
	if file != "" {
		*buf = append(*buf, ' ')
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		*buf = append(*buf, fmt.Sprint(line)...)
	}
	*buf = append(*buf, ": "...)
}

// callsiteDepth is the number of frames between runtime.Caller and the code
// that called one of the Logger methods.
const callsiteDepth = 4

func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(callsiteDepth)
	if !ok {
		return "???", 0
	}
	if flag&LogFlagShortFile != 0 {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
	}
	return file, line
}
