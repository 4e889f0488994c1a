package qa

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
)

// Config holds thresholds for quality checks.
type Config struct {
	MinSummaryLength int     // runes; default 50
	GroundingRatio   float64 // fraction of content words that must appear in source; default 0.6
}

// Scorer validates generated study material against its source document.
// It is a pure function of (generated, source): it never mutates content,
// only produces a confidence score and diagnostic flags.
type Scorer struct {
	cfg    Config
	logger *slog.Logger
}

func NewScorer(cfg Config, logger *slog.Logger) *Scorer {
	if cfg.MinSummaryLength <= 0 {
		cfg.MinSummaryLength = 50
	}
	if cfg.GroundingRatio <= 0 {
		cfg.GroundingRatio = 0.6
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{cfg: cfg, logger: logger}
}

// Score runs every quality check and returns passed/total as the confidence
// score, with a flag per failed check.
func (s *Scorer) Score(guide entity.StudyGuideContent, source entity.NormalizedDocument) (float32, []string) {
	sourceWords := wordSet(source.FullText())

	var total, passed int
	var flags []string

	check := func(ok bool, flag string) {
		total++
		if ok {
			passed++
		} else {
			flags = append(flags, flag)
		}
	}

	if len(guide.SummarySections) == 0 {
		check(false, "no summary sections")
	}
	for i, sec := range guide.SummarySections {
		check(len(strings.TrimSpace(sec.Content)) >= s.cfg.MinSummaryLength,
			fmt.Sprintf("summary %d too short", i))
		check(s.grounded(sec.Content, sourceWords),
			fmt.Sprintf("summary %d contains information not present in source", i))
	}

	for i, q := range guide.Questions {
		check(s.grounded(q.CorrectAnswer, sourceWords),
			fmt.Sprintf("question %d not answerable from source", i))
		if q.QuestionType == "multiple_choice" {
			check(len(q.Options) >= 2 && containsString(q.Options, q.CorrectAnswer),
				fmt.Sprintf("question %d options malformed", i))
		}
	}

	if len(guide.Concepts) == 0 {
		check(false, "no concepts extracted")
	}
	for i, c := range guide.Concepts {
		check(s.grounded(c.Term, sourceWords),
			fmt.Sprintf("concept %d term absent from source", i))
		check(strings.TrimSpace(c.Definition) != "",
			fmt.Sprintf("concept %d has empty definition", i))
	}

	if total == 0 {
		return 0, []string{"nothing to validate"}
	}
	score := float32(passed) / float32(total)
	s.logger.Debug("qa.score", "passed", passed, "total", total, "score", score, "flags", len(flags))
	return score, flags
}

// grounded reports whether enough of the text's significant words appear in
// the source. Short fragments with no significant words pass (nothing to
// check against).
func (s *Scorer) grounded(text string, sourceWords map[string]struct{}) bool {
	words := significantWords(text)
	if len(words) == 0 {
		return true
	}
	found := 0
	for _, w := range words {
		if _, ok := sourceWords[w]; ok {
			found++
		}
	}
	return float64(found)/float64(len(words)) >= s.cfg.GroundingRatio
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[strings.Trim(w, ".,;:!?()[]\"'")] = struct{}{}
	}
	return set
}

// significantWords keeps lowercase words of 5+ runes; shorter ones are too
// common to signal grounding either way.
func significantWords(text string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if len([]rune(w)) >= 5 {
			out = append(out, w)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
