package llm

// BuildAnalysisJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// analysis stage constrains model output with, as a generic map. We pass it
// as a structured-output constraint and also use it locally to validate.
func BuildAnalysisJSONSchema() map[string]any {
	concept := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"term":             map[string]any{"type": "string", "minLength": 1},
			"definition":       map[string]any{"type": "string", "minLength": 1},
			"importance_score": scoreProp(),
			"category":         map[string]any{"type": "string"},
			"examples":         stringArrayProp(),
			"related_concepts": stringArrayProp(),
			"page_reference":   map[string]any{"type": "string"},
		},
		"required": []string{"term", "definition", "importance_score"},
	}
	relation := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"from":     map[string]any{"type": "string"},
			"to":       map[string]any{"type": "string"},
			"kind":     map[string]any{"type": "string", "enum": []string{"related", "prerequisite", "example_of"}},
			"strength": scoreProp(),
		},
		"required": []string{"from", "to", "kind"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"concepts":       map[string]any{"type": "array", "items": concept, "minItems": 1},
			"relationships":  map[string]any{"type": "array", "items": relation},
			"content_chunks": stringArrayProp(),
		},
		"required": []string{"concepts"},
	}
}

// BuildStudyGuideJSONSchema returns the schema for generated study guides.
func BuildStudyGuideJSONSchema() map[string]any {
	summary := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"level":    map[string]any{"type": "string", "enum": bloomLevels()},
			"content":  map[string]any{"type": "string", "minLength": 50},
			"examples": stringArrayProp(),
		},
		"required": []string{"level", "content"},
	}
	question := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"id":             map[string]any{"type": "string"},
			"question_text":  map[string]any{"type": "string", "minLength": 1},
			"question_type":  map[string]any{"type": "string", "enum": []string{"multiple_choice", "short_answer", "essay", "true_false"}},
			"correct_answer": map[string]any{"type": "string", "minLength": 1},
			"options":        stringArrayProp(),
			"explanation":    map[string]any{"type": "string"},
			"difficulty":     map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
			"topic":          map[string]any{"type": "string"},
			"bloom_level":    map[string]any{"type": "string", "enum": bloomLevels()},
			"page_reference": map[string]any{"type": "string"},
		},
		"required": []string{"question_text", "question_type", "correct_answer", "difficulty"},
	}
	flashcard := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"front": map[string]any{"type": "string", "minLength": 1},
			"back":  map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"front", "back"},
	}
	concept := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"term":             map[string]any{"type": "string", "minLength": 1},
			"definition":       map[string]any{"type": "string", "minLength": 1},
			"importance_score": scoreProp(),
			"category":         map[string]any{"type": "string"},
			"examples":         stringArrayProp(),
			"related_concepts": stringArrayProp(),
			"page_reference":   map[string]any{"type": "string"},
		},
		"required": []string{"term", "definition", "importance_score"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":            map[string]any{"type": "string", "minLength": 1},
			"summary_sections": map[string]any{"type": "array", "items": summary, "minItems": 1},
			"questions":        map[string]any{"type": "array", "items": question},
			"concepts":         map[string]any{"type": "array", "items": concept},
			"concept_map": map[string]any{
				"type":                 "object",
				"additionalProperties": stringArrayProp(),
			},
			"flashcards": map[string]any{"type": "array", "items": flashcard},
		},
		"required": []string{"title", "summary_sections", "concepts"},
	}
}

func bloomLevels() []string {
	return []string{"remember", "understand", "apply", "analyze", "evaluate", "create"}
}

func scoreProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}

func stringArrayProp() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}
