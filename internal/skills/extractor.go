package skills

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"interview-coach/internal/ner"
)

// Keyword floor for skill extraction. Matches are substring-based against
// the lowercased text, so "sql" also matches inside "postgresql".
var skillKeywords = []string{
	"python", "java", "c++", "sql", "html", "css", "javascript",
	"machine learning", "deep learning", "nlp", "pandas", "numpy",
	"react", "node", "django", "flask", "git", "docker",
}

// Entity labels accepted from the NER model.
var skillLabels = map[string]bool{
	"SKILL":                true,
	"TECHNOLOGY":           true,
	"PROGRAMMING_LANGUAGE": true,
	"FRAMEWORK":            true,
	"Soft_skills":          true,
	"Teamwork":             true,
}

type Extractor struct {
	recognizer ner.Recognizer
	logger     *zap.Logger
}

// NewExtractor builds a skill extractor. A nil recognizer disables the NER
// pass and keyword matching runs alone.
func NewExtractor(recognizer ner.Recognizer, logger *zap.Logger) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		logger:     logger,
	}
}

// Extract returns the deduplicated union of keyword matches and
// skill-labeled NER entities, all lowercased. NER failures degrade to
// keyword-only results rather than failing the extraction.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	found := make(map[string]bool)

	textLower := strings.ToLower(text)
	for _, keyword := range skillKeywords {
		if strings.Contains(textLower, keyword) {
			found[keyword] = true
		}
	}

	if e.recognizer != nil {
		entities, err := e.recognizer.Recognize(ctx, text)
		if err != nil {
			e.logger.Warn("ner extraction failed, keeping keyword matches", zap.Error(err))
		} else {
			for _, entity := range entities {
				if skillLabels[entity.Label] {
					found[strings.ToLower(entity.Text)] = true
				}
			}
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)

	return result
}
