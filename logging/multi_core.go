package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewMultiCore creates a zapcore.Core that tees output to the console and
// to a rotating log file.
//
// The file output always uses JSON encoding for structured processing.
// The console output is human-readable and colored in development mode,
// JSON otherwise. An empty filePath yields a console-only core.
func NewMultiCore(level zapcore.Level, filePath string, isDev bool) (zapcore.Core, error) {
	consoleCore := zapcore.NewCore(
		newConsoleEncoder(isDev),
		zapcore.AddSync(os.Stdout),
		level,
	)

	if filePath == "" {
		return consoleCore, nil
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		NewFileWriter(filePath),
		level,
	)

	return zapcore.NewTee(consoleCore, fileCore), nil
}

// NewMultiCoreWithWriters creates a teed core over caller-supplied
// writers. Used by tests that capture output in buffers.
func NewMultiCoreWithWriters(level zapcore.Level, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	consoleCore := zapcore.NewCore(
		newConsoleEncoder(isDev),
		consoleWriter,
		level,
	)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		level,
	)

	return zapcore.NewTee(consoleCore, fileCore)
}

func newConsoleEncoder(isDev bool) zapcore.Encoder {
	if isDev {
		return zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	}
	return zapcore.NewJSONEncoder(NewEncoderConfig())
}
