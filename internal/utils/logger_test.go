package utils

import "testing"

func TestNewLoggerConfigurationWritesConsoleOutputToStderr(t *testing.T) {
	config := newLoggerConfiguration()
	if config.Encoding != "console" {
		t.Fatalf("expected console encoding, got %s", config.Encoding)
	}
	if len(config.OutputPaths) != 1 || config.OutputPaths[0] != "stderr" {
		t.Fatalf("expected stderr output, got %v", config.OutputPaths)
	}
	if config.EncoderConfig.TimeKey != "" || config.EncoderConfig.CallerKey != "" {
		t.Fatalf("expected time and caller keys to be disabled")
	}
	if config.EncoderConfig.LevelKey != "" {
		t.Fatalf("expected level key to be disabled, got %q", config.EncoderConfig.LevelKey)
	}

	logger, buildError := NewApplicationLogger()
	if buildError != nil {
		t.Fatalf("NewApplicationLogger error: %v", buildError)
	}
	defer func() { _ = logger.Sync() }()
}
