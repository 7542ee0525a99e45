package model

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extraction.MaxKeywordSize != 3 {
		t.Errorf("Expected default max keyword size 3, got %d", cfg.Extraction.MaxKeywordSize)
	}
	if cfg.Extraction.FlexibleWindow {
		t.Error("Expected flexible window to default to false")
	}
	if cfg.Extraction.Tokenizer != TokenizerRegexp {
		t.Errorf("Expected default tokenizer %q, got %q", TokenizerRegexp, cfg.Extraction.Tokenizer)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfig_Validate_KeywordSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		cfg := DefaultConfig()
		cfg.Extraction.MaxKeywordSize = size

		err := cfg.Validate()
		if err == nil {
			t.Errorf("Expected error for max keyword size %d", size)
			continue
		}
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
		}
	}
}

func TestConfig_Validate_Tokenizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extraction.Tokenizer = "morphological"

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for unknown tokenizer, got %v", err)
	}

	cfg.Extraction.Tokenizer = TokenizerTreebank
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected treebank tokenizer to validate, got %v", err)
	}
}
