package logging

import (
	"strings"

	"github.com/lattica-robotics/rcutils-go/errstate"
)

const loggingSeparator = "."

// addSeverityEntry inserts or overwrites name's level in the severity map.
// setByUser tags the entry with severityUserBit so a later purge (see
// SetLoggerLevel) knows not to discard it as a stale cache entry. g.mu must
// already be held.
func addSeverityEntry(name string, level Level, setByUser bool) error {
	stored := int(level)
	if setByUser {
		stored |= severityUserBit
	}
	return g.severities.Set(name, stored)
}

// getSeverityEntry returns name's stored level with severityUserBit masked
// off. g.mu must already be held.
func getSeverityEntry(name string) (Level, bool) {
	v, ok := g.severities.Get(name)
	if !ok {
		return Unset, false
	}
	return Level(v &^ severityUserBit), true
}

// GetDefaultLoggerLevel returns the severity level new loggers inherit when
// no entry (or ancestor entry) names them.
func GetDefaultLoggerLevel() Level {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.defaultLoggerLevel
}

// SetDefaultLoggerLevel sets the severity level new loggers inherit.
// RCUTILS_LOG_SEVERITY_UNSET (the zero value) is not validated against,
// matching the original's unchecked int parameter.
func SetDefaultLoggerLevel(level Level) {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.defaultLoggerLevel = level
}

// GetLoggerLevel returns name's own severity level, or Unset if name has no
// entry of its own (this does not walk ancestors; see GetEffectiveLevel for
// that). An empty name returns the default logger level.
func GetLoggerLevel(name string) Level {
	return GetLoggerLevelN(name, len(name))
}

// GetLoggerLevelN behaves like GetLoggerLevel but only considers the first
// nameLength bytes of name, letting a caller look up a level for a
// substring without allocating it first.
func GetLoggerLevelN(name string, nameLength int) Level {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()

	if nameLength == 0 {
		return g.defaultLoggerLevel
	}
	if !g.severitiesValid {
		return Unset
	}
	if nameLength > len(name) {
		nameLength = len(name)
	}
	short := name[:nameLength]
	level, _ := getSeverityEntry(short)
	return level
}

// SetLoggerLevel sets name's severity level explicitly. If name already has
// an entry, setting it also purges any descendant entries that were only
// cached (not themselves explicitly set), so that a new ancestor level takes
// effect for them on next lookup. Passing name == "" also updates the
// default logger level.
func SetLoggerLevel(name string, level Level) error {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.severitiesValid {
		return errstate.New(errstate.LoggingSeverityMapInvalid, "logging: set logger level: severity map is invalid")
	}
	if level.String() == "" {
		return errstate.New(errstate.InvalidArgument, "logging: set logger level: invalid severity level")
	}

	if g.severities.KeyExists(name) {
		var toRemove []string
		var prev *string
		for {
			key, data, ok := g.severities.GetNextKeyAndData(prev)
			if !ok {
				break
			}
			keyCopy := key
			switch {
			case key == name:
				toRemove = append(toRemove, key)
			case strings.HasPrefix(key, name+loggingSeparator) && data&severityUserBit == 0:
				toRemove = append(toRemove, key)
			}
			prev = &keyCopy
		}
		for _, key := range toRemove {
			_ = g.severities.Unset(key)
		}
	}

	if err := addSeverityEntry(name, level, true); err != nil {
		return errstate.WrapWithLocation(err, errstate.Error, "logging: set logger level")
	}
	if name == "" {
		g.defaultLoggerLevel = level
	}
	return nil
}

// GetEffectiveLevel returns name's effective severity level: name's own
// level if set, else the nearest ancestor's (splitting on "." from the
// right), else the default logger level.
func GetEffectiveLevel(name string) Level {
	autoinit()
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.severitiesValid || g.severities.Size() == 0 {
		return g.defaultLoggerLevel
	}

	if level, ok := getSeverityEntry(name); ok && level != Unset {
		return level
	}

	remaining := name
	for {
		idx := strings.LastIndex(remaining, loggingSeparator)
		if idx < 0 {
			break
		}
		remaining = remaining[:idx]
		if level, ok := getSeverityEntry(remaining); ok && level != Unset {
			return level
		}
	}
	return g.defaultLoggerLevel
}

// IsEnabledFor reports whether a logger named name is enabled for severity,
// i.e. severity is at or above name's effective level. An empty name uses
// the default logger level directly, without a map lookup.
func IsEnabledFor(name string, severity Level) bool {
	autoinit()
	level := GetDefaultLoggerLevel()
	if name != "" {
		level = GetEffectiveLevel(name)
	}
	return severity >= level
}
