package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// Backend fans log entries out to a set of writers, each with its own
// threshold level. All writes funnel through a single goroutine, so writers
// never see interleaved entries.
type Backend struct {
	isRunning uint32
	writers   []logWriter
	writeChan chan logEntry
	syncClose sync.Mutex
}

type logEntry struct {
	log   []byte
	level Level
}

type logWriter struct {
	io.WriteCloser
	logLevel Level
}

// NewBackend creates a new logger backend. Writers are attached with
// AddLogWriter or AddLogFile before calling Run.
func NewBackend() *Backend {
	return &Backend{writeChan: make(chan logEntry)}
}

const (
	defaultThresholdKB = 10 * 1000
	defaultMaxRolls    = 4
)

// AddLogWriter attaches a writer that receives every entry at or above the
// given level.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add writers while the logger backend is running")
	}

	b.writers = append(b.writers, logWriter{
		WriteCloser: writer,
		logLevel:    logLevel,
	})
	return nil
}

// AddLogFile attaches a rotated log file that receives every entry at or
// above the given level. The file and its directory are created if missing.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add log files while the logger backend is running")
	}

	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}

	fileRotator, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}

	b.writers = append(b.writers, logWriter{
		WriteCloser: fileRotator,
		logLevel:    logLevel,
	})
	return nil
}

// Run launches the backend goroutine. Should only be called once, after all
// writers have been attached.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("the logger backend is already running")
	}

	go b.runBlocking()
	return nil
}

func (b *Backend) runBlocking() {
	defer atomic.StoreUint32(&b.isRunning, 0)
	b.syncClose.Lock()
	defer b.syncClose.Unlock()

	for entry := range b.writeChan {
		for _, writer := range b.writers {
			if entry.level >= writer.logLevel {
				_, _ = writer.Write(entry.log)
			}
		}
	}
}

// IsRunning reports whether Run has been called and Close hasn't.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close drains pending entries and closes all writers.
func (b *Backend) Close() {
	close(b.writeChan)
	// Wait for the backend goroutine to finish writing.
	b.syncClose.Lock()
	defer b.syncClose.Unlock()

	for _, writer := range b.writers {
		_ = writer.Close()
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. The tag is included in all log messages. Loggers start at the
// info level.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{
		level:     uint32(LevelInfo),
		tag:       subsystemTag,
		backend:   b,
		writeChan: b.writeChan,
	}
}
