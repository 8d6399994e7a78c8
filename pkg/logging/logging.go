package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	debugLog *log.Logger
	logMutex sync.Mutex
	debugOn  bool
)

// Init sets up leveled logging. Each level goes to stdout/stderr and to a
// size-rotated file under logDir.
func Init(logDir string, debug bool) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	infoWriter := io.MultiWriter(os.Stdout, rotatedFile(filepath.Join(logDir, "info.log")))
	warnWriter := io.MultiWriter(os.Stdout, rotatedFile(filepath.Join(logDir, "warn.log")))
	errorWriter := io.MultiWriter(os.Stderr, rotatedFile(filepath.Join(logDir, "error.log")))

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)
	debugLog = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime)
	debugOn = debug

	// Override Go's default log output as well.
	log.SetOutput(infoWriter)
}

func rotatedFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func callerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

func output(l *log.Logger, format string, v ...interface{}) {
	if l == nil {
		log.Printf(format, v...)
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	l.Printf("[%s] %s", callerInfo(), fmt.Sprintf(format, v...))
}

func Info(format string, v ...interface{}) {
	output(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	output(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	output(errorLog, format, v...)
}

func Debug(format string, v ...interface{}) {
	if !debugOn {
		return
	}
	output(debugLog, format, v...)
}
