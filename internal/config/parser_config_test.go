package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParserConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultParserConfig().Validate())
}

func TestDefaultDirectoryConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultDirectoryConfig().Validate())
}

func TestParserConfigRejectsInvertedFunctionLineRange(t *testing.T) {
	cfg := DefaultParserConfig()
	cfg.MinFunctionLines = 50
	cfg.MaxFunctionLines = 10
	assert.Error(t, cfg.Validate())
}

func TestParserConfigRejectsNonPositiveMaxFileSize(t *testing.T) {
	cfg := DefaultParserConfig()
	cfg.MaxFileSize = 0
	assert.Error(t, cfg.Validate())
}

func TestDirectoryConfigRejectsOverlapEqualToChunkSize(t *testing.T) {
	cfg := DefaultDirectoryConfig()
	cfg.ChunkOverlap = cfg.ChunkSize
	assert.Error(t, cfg.Validate())
}

func TestDirectoryConfigRejectsNegativeWorkers(t *testing.T) {
	cfg := DefaultDirectoryConfig()
	cfg.Workers = -1
	assert.Error(t, cfg.Validate())
}
