// Package logger provides prefixed, colored loggers for the application's components.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger that writes to w. The prefix is printed in color
// before every message.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{log: l}, nil
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

// prefixFormatter renders entries as "[PREFIX] [LEVEL] message".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s %s[%s]%s %s\n",
		e.Time.Format("2006/01/02 15:04:05"),
		f.color, f.prefix, config.ColorReset,
		levelColor(e.Level), strings.ToUpper(e.Level.String()), config.ColorReset,
		e.Message,
	)
	return b.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.ColorRed
	case logrus.WarnLevel:
		return config.ColorYellow
	default:
		return config.ColorGreen
	}
}
