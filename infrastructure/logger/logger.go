package logger

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Logger writes leveled, tagged log messages for one subsystem to its
// backend. It is safe for concurrent use.
type Logger struct {
	level     uint32
	tag       string
	backend   *Backend
	writeChan chan<- logEntry
}

// Level returns the current threshold level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the threshold level of the logger.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

const timestampFormat = "2006-01-02 15:04:05.000"

func (l *Logger) print(level Level, args ...interface{}) {
	if level < l.Level() || !l.backend.IsRunning() {
		return
	}

	message := fmt.Sprintf("%s [%s] %s: %s\n",
		time.Now().Format(timestampFormat), level, l.tag, fmt.Sprint(args...))
	l.writeChan <- logEntry{log: []byte(message), level: level}
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	l.print(level, fmt.Sprintf(format, args...))
}

// Tracef formats a message according to a format specifier and writes it at
// the trace level. The other leveled methods behave the same way for their
// levels.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}
