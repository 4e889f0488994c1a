package llm

import (
	"fmt"
	"strings"
)

// BuildAnalysisSystemPrompt frames the concept-extraction task.
func BuildAnalysisSystemPrompt(req AnalyzeRequest) string {
	var b strings.Builder
	b.WriteString("You are an expert educational content analyst. ")
	b.WriteString("Extract the key concepts from the provided course material. ")
	b.WriteString("Every term and definition MUST appear in or be directly supported by the source text; never introduce outside knowledge.")
	if req.Topic != "" {
		fmt.Fprintf(&b, " The material covers: %s.", req.Topic)
	}
	if req.DifficultyLevel != "" {
		fmt.Fprintf(&b, " Target audience level: %s.", req.DifficultyLevel)
	}
	return b.String()
}

// BuildGenerationSystemPrompt frames the study-guide task from preferences.
func BuildGenerationSystemPrompt(req GenerateRequest) string {
	var b strings.Builder
	b.WriteString("You are an expert study-guide author. ")
	b.WriteString("Produce a study guide grounded strictly in the provided source material and concept list. ")
	detail := req.Preferences.DetailLevel
	if detail == "" {
		detail = "standard"
	}
	fmt.Fprintf(&b, "Detail level: %s. ", detail)
	b.WriteString("Organize summary sections by Bloom taxonomy level.")
	if !req.Preferences.IncludeQuestions {
		b.WriteString(" Omit practice questions.")
	}
	if !req.Preferences.IncludeFlashcards {
		b.WriteString(" Omit flashcards.")
	}
	return b.String()
}

// BuildGenerationUserPrompt lays out the source text and extracted concepts.
func BuildGenerationUserPrompt(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\n", req.Title)
	if len(req.Analysis.Concepts) > 0 {
		b.WriteString("Key concepts already extracted:\n")
		for _, c := range req.Analysis.Concepts {
			fmt.Fprintf(&b, "- %s: %s\n", c.Term, c.Definition)
		}
		b.WriteString("\n")
	}
	b.WriteString("Source material:\n")
	b.WriteString(req.DocumentText)
	return b.String()
}
