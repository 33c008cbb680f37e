package caliper

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		setupFunc      func(*Logger)
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "debug level shows all messages",
			level: LogDebug,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[DEBUG]",
				"debug message",
				"[INFO]",
				"info message",
				"[WARN]",
				"warn message",
				"[ERROR]",
				"error message",
			},
		},
		{
			name:  "info level hides debug messages",
			level: LogInfo,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[INFO]",
				"info message",
				"[WARN]",
				"warn message",
				"[ERROR]",
				"error message",
			},
			notExpected: []string{
				"[DEBUG]",
				"debug message",
			},
		},
		{
			name:  "error level shows only errors",
			level: LogError,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[ERROR]",
				"error message",
			},
			notExpected: []string{
				"[DEBUG]",
				"[INFO]",
				"[WARN]",
			},
		},
		{
			name:  "off level shows nothing",
			level: LogOff,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{},
			notExpected: []string{
				"[DEBUG]",
				"[INFO]",
				"[WARN]",
				"[ERROR]",
			},
		},
		{
			name:  "structured fields",
			level: LogDebug,
			setupFunc: func(l *Logger) {
				l.WithFields(Fields{
					"component": "shape",
					"file":      "report.docx",
				}).Debug("resizing inline shape")
			},
			expectedOutput: []string{
				"[DEBUG]",
				"resizing inline shape",
				"component=shape",
				"file=report.docx",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			tt.setupFunc(logger)

			output := buf.String()

			// Check expected output
			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput: %s", expected, output)
				}
			}

			// Check not expected output
			for _, notExpected := range tt.notExpected {
				if strings.Contains(output, notExpected) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput: %s", notExpected, output)
				}
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	// Save original logger
	original := globalLogger

	var buf bytes.Buffer
	customLogger := NewLogger(&buf, LogDebug)
	SetLogger(customLogger)

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	output := buf.String()
	expectedStrings := []string{
		"[DEBUG] test debug",
		"[INFO] test info",
		"[WARN] test warn",
		"[ERROR] test error",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, but it didn't.\nOutput: %s", expected, output)
		}
	}

	// Restore original logger
	globalLogger = original
}

func TestDebugMode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogDebug)

	if !logger.IsDebugMode() {
		t.Error("Expected IsDebugMode() to return true for LogDebug level")
	}

	logger.SetLevel(LogInfo)
	if logger.IsDebugMode() {
		t.Error("Expected IsDebugMode() to return false for LogInfo level")
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogDebug)

	// Test field chaining
	logger.
		WithField("part", "word/document.xml").
		WithField("shape", 3).
		WithFields(Fields{
			"action": "resize",
			"width":  914400,
		}).
		Info("updating shape extent")

	output := buf.String()
	expectedFields := []string{
		"part=word/document.xml",
		"shape=3",
		"action=resize",
		"width=914400",
	}

	for _, field := range expectedFields {
		if !strings.Contains(output, field) {
			t.Errorf("Expected output to contain field %q, but it didn't.\nOutput: %s", field, output)
		}
	}
}
