// Package logger is a small columnar front end for logrus. Records are
// handed to a single goroutine through a buffered channel so callers on hot
// paths never block on the output writer.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

type record struct {
	logFn func(...any)
	obj   string
	msg   string
}

const (
	queueSize = 1000
	objWidth  = 20
)

var (
	queue    = make(chan record, queueSize)
	pending  sync.WaitGroup
	initOnce sync.Once
)

func objToString(obj any) string {
	switch o := obj.(type) {
	case nil:
		return "NIL"
	case fmt.Stringer:
		return o.String()
	case string:
		return o
	default:
		return reflect.TypeOf(obj).Name()
	}
}

func column(obj any) string {
	s := objToString(obj)
	if len(s) > objWidth {
		s = s[:objWidth]
	}
	return s
}

// Init sets the level and output and starts the writer goroutine. Only the
// first call starts the goroutine; later calls just update level and output.
func Init(lvl logrus.Level, out io.Writer) {
	logrus.SetLevel(lvl)
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/01/02 15:04:05",
	})

	initOnce.Do(func() {
		go func() {
			sb := new(bytes.Buffer)
			for r := range queue {
				fmt.Fprintf(sb, "|%20s|%-100s", r.obj, r.msg)
				r.logFn(sb.String())
				sb.Reset()
				pending.Done()
			}
		}()
	})
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func enqueue(lvl logrus.Level, logFn func(...any), object any, msg string) {
	if logrus.GetLevel() < lvl {
		return
	}
	pending.Add(1)
	queue <- record{logFn: logFn, obj: column(object), msg: msg}
}

// Flush blocks until every queued record has been written. Init must have
// been called.
func Flush() {
	pending.Wait()
}

func Debug(object any, message string) {
	enqueue(logrus.DebugLevel, logrus.Debug, object, message)
}

func Debugf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.DebugLevel {
		return
	}
	enqueue(logrus.DebugLevel, logrus.Debug, object, fmt.Sprintf(message, args...))
}

func Info(object any, message string) {
	enqueue(logrus.InfoLevel, logrus.Info, object, message)
}

func Infof(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.InfoLevel {
		return
	}
	enqueue(logrus.InfoLevel, logrus.Info, object, fmt.Sprintf(message, args...))
}

func Warning(object any, message string) {
	enqueue(logrus.WarnLevel, logrus.Warning, object, message)
}

func Warningf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.WarnLevel {
		return
	}
	enqueue(logrus.WarnLevel, logrus.Warning, object, fmt.Sprintf(message, args...))
}

func Error(object any, message string) {
	enqueue(logrus.ErrorLevel, logrus.Error, object, message)
}

func Errorf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.ErrorLevel {
		return
	}
	enqueue(logrus.ErrorLevel, logrus.Error, object, fmt.Sprintf(message, args...))
}

// Fatalf bypasses the queue so the message is written before the exit.
func Fatalf(object any, message string, args ...any) {
	logrus.Fatalf("|%20s|%-100s", column(object), fmt.Sprintf(message, args...))
}
