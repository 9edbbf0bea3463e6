package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/snipcore/internal/model"
)

func TestClassifyCodeFile(t *testing.T) {
	class, lang := classify("main.go", classifyConfig{})
	assert.Equal(t, classCode, class)
	assert.Equal(t, model.LanguageGo, lang)
}

func TestClassifyDocumentation(t *testing.T) {
	class, _ := classify("README.md", classifyConfig{extractDocumentation: true})
	assert.Equal(t, classDocumentation, class)
}

func TestClassifyConfigFile(t *testing.T) {
	class, _ := classify("settings.yaml", classifyConfig{extractConfigFiles: true})
	assert.Equal(t, classConfig, class)
}

func TestClassifyUnrecognizedWhenTextDisabled(t *testing.T) {
	class, _ := classify("notes.xyz", classifyConfig{})
	assert.Equal(t, classUnrecognized, class)
}

func TestClassifyFallsBackToTextWhenEnabled(t *testing.T) {
	class, _ := classify("notes.xyz", classifyConfig{extractTextFiles: true})
	assert.Equal(t, classText, class)
}
