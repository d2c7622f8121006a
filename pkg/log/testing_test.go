package log

import (
	"strings"
	"testing"
)

func TestTestLoggerCapture(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("vocabularies fitted", VocabSizeKey, 40)
	logger.Debug("detail", "k", "v")

	out := buffer.String()
	if !strings.Contains(out, `"message":"vocabularies fitted"`) {
		t.Errorf("info record missing: %s", out)
	}
	if !strings.Contains(out, `"`+VocabSizeKey+`":40`) {
		t.Errorf("field missing: %s", out)
	}
	if !logger.ContainsMessage("detail") {
		t.Error("ContainsMessage missed a captured record")
	}
	if logger.ContainsMessage("never logged") {
		t.Error("ContainsMessage reported a phantom record")
	}
}

func TestTestLoggerLevelFilter(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buffer.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("records below the level leaked: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	child := logger.With(ComponentKey, "preprocessing")
	child.Info("corpus encoded")

	out := buffer.String()
	if !strings.Contains(out, `"`+ComponentKey+`":"preprocessing"`) {
		t.Errorf("bound field missing: %s", out)
	}
}

func TestTestProvider(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)
	provider := &TestProvider{Logger: logger}

	prev := GetProvider()
	SetProvider(provider)
	defer SetProvider(prev)

	GetLoggerWithName("dataset").Info("dataset split")

	if !strings.Contains(buffer.String(), `"message":"dataset split"`) {
		t.Errorf("provider routing failed: %s", buffer.String())
	}
}
