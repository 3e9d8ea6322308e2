package logger

import "strings"

// Level is the severity of a log entry, and the threshold of loggers and
// writers: entries below a logger's level are dropped.
type Level uint32

// Level constants, from the most verbose to none at all.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

type levelNames struct {
	tag  string
	name string
}

var levels = [...]levelNames{
	LevelTrace:    {tag: "TRC", name: "trace"},
	LevelDebug:    {tag: "DBG", name: "debug"},
	LevelInfo:     {tag: "INF", name: "info"},
	LevelWarn:     {tag: "WRN", name: "warn"},
	LevelError:    {tag: "ERR", name: "error"},
	LevelCritical: {tag: "CRT", name: "critical"},
	LevelOff:      {tag: "OFF", name: "off"},
}

// LevelFromString parses a level from either its name ("debug") or its tag
// ("dbg"), ignoring case. It returns LevelInfo and false for anything else.
func LevelFromString(s string) (l Level, ok bool) {
	s = strings.ToLower(s)
	for level, names := range levels {
		if s == names.name || s == strings.ToLower(names.tag) {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// LevelNames returns the names LevelFromString accepts, from the most
// verbose level to LevelOff.
func LevelNames() []string {
	names := make([]string, len(levels))
	for level, levelNames := range levels {
		names[level] = levelNames.name
	}
	return names
}

// String returns the three letter tag entries of this level are marked
// with, or "OFF" for levels that produce no output.
func (l Level) String() string {
	if l >= LevelOff {
		return levels[LevelOff].tag
	}
	return levels[l].tag
}
