package logging

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errUnpairedKey = errors.New("unpaired log key")

// fanoutLogger writes every enabled entry to each of its appenders in turn. Subloggers share the
// appenders of their parent but own their level.
type fanoutLogger struct {
	name      string
	level     AtomicLevel
	utc       bool
	appenders []Appender
}

func newFanoutLogger(name string, level Level, utc bool, appenders ...Appender) *fanoutLogger {
	return &fanoutLogger{
		name:      name,
		level:     NewAtomicLevelAt(level),
		utc:       utc,
		appenders: appenders,
	}
}

func (l *fanoutLogger) AddAppender(appender Appender) {
	l.appenders = append(l.appenders, appender)
}

func (l *fanoutLogger) SetLevel(level Level) {
	l.level.Set(level)
}

func (l *fanoutLogger) GetLevel() Level {
	return l.level.Get()
}

func (l *fanoutLogger) Sublogger(subname string) Logger {
	name := subname
	if l.name != "" {
		name = l.name + "." + subname
	}
	return newFanoutLogger(name, l.level.Get(), l.utc, l.appenders...)
}

func (l *fanoutLogger) Sync() error {
	var errs error
	for _, appender := range l.appenders {
		errs = multierr.Append(errs, appender.Sync())
	}
	return errs
}

// emit must be called directly from one of the exported logging methods: the caller recorded on
// the entry is two frames up.
func (l *fanoutLogger) emit(level Level, msg string, fields []zapcore.Field) {
	entry := zapcore.Entry{
		Level:      level.AsZap(),
		Time:       time.Now(),
		LoggerName: l.name,
		Message:    msg,
		Caller:     zapcore.NewEntryCaller(runtime.Caller(2)),
	}
	if l.utc {
		entry.Time = entry.Time.UTC()
	}
	for _, appender := range l.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// pairsToFields reads keysAndValues as key, value, key, value. A trailing key is logged with
// errUnpairedKey as its value.
func pairsToFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for len(keysAndValues) > 0 {
		key := fmt.Sprint(keysAndValues[0])
		if len(keysAndValues) == 1 {
			fields = append(fields, zap.Any(key, errUnpairedKey))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[1]))
		keysAndValues = keysAndValues[2:]
	}
	return fields
}

func (l *fanoutLogger) Debugf(template string, args ...interface{}) {
	if l.level.Enabled(DEBUG) {
		l.emit(DEBUG, fmt.Sprintf(template, args...), nil)
	}
}

func (l *fanoutLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if l.level.Enabled(DEBUG) {
		l.emit(DEBUG, msg, pairsToFields(keysAndValues))
	}
}

func (l *fanoutLogger) Infof(template string, args ...interface{}) {
	if l.level.Enabled(INFO) {
		l.emit(INFO, fmt.Sprintf(template, args...), nil)
	}
}

func (l *fanoutLogger) Infow(msg string, keysAndValues ...interface{}) {
	if l.level.Enabled(INFO) {
		l.emit(INFO, msg, pairsToFields(keysAndValues))
	}
}

func (l *fanoutLogger) Warnf(template string, args ...interface{}) {
	if l.level.Enabled(WARN) {
		l.emit(WARN, fmt.Sprintf(template, args...), nil)
	}
}

func (l *fanoutLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if l.level.Enabled(WARN) {
		l.emit(WARN, msg, pairsToFields(keysAndValues))
	}
}

func (l *fanoutLogger) Errorf(template string, args ...interface{}) {
	if l.level.Enabled(ERROR) {
		l.emit(ERROR, fmt.Sprintf(template, args...), nil)
	}
}

func (l *fanoutLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if l.level.Enabled(ERROR) {
		l.emit(ERROR, msg, pairsToFields(keysAndValues))
	}
}
