package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	shortTextLimit = 100
	longTextLimit  = 300
	keywordMinLen  = 5
	maxKeywords    = 5
)

var (
	paragraphBreak = regexp.MustCompile(`\n\n+`)
	hasDigit       = regexp.MustCompile(`[0-9]`)
	keywordPunct   = regexp.MustCompile(`[.,!?;:()]`)
)

// HeuristicSummarizer builds a templated summary from the first sentence,
// paragraph count and the first few long words. It never fails.
type HeuristicSummarizer struct{}

func NewHeuristic() *HeuristicSummarizer {
	return &HeuristicSummarizer{}
}

func (HeuristicSummarizer) Summarize(_ context.Context, text string) (string, error) {
	sentence := firstSentence(text)
	if utf8.RuneCountInString(text) < shortTextLimit {
		if sentence == "" {
			return text, nil
		}
		return sentence, nil
	}

	keywords := keywords(text)

	var b strings.Builder
	b.WriteString(sentence)
	if n := paragraphCount(text); n > 1 {
		fmt.Fprintf(&b, " Contains %d sections.", n)
	}
	if len(keywords) > 0 {
		fmt.Fprintf(&b, " Key topics include: %s.", strings.Join(keywords, ", "))
	}
	if utf8.RuneCountInString(text) > longTextLimit {
		if len(keywords) > 0 {
			fmt.Fprintf(&b, " The note discusses %s.", strings.Join(keywords[:min(3, len(keywords))], ", "))
		} else {
			b.WriteString(" The note covers multiple topics.")
		}
	}
	return b.String(), nil
}

// firstSentence returns text through the first '.', '!' or '?'. A terminator
// at the very start does not count.
func firstSentence(text string) string {
	end := strings.IndexAny(text, ".!?")
	if end <= 0 {
		return ""
	}
	return text[:end+1]
}

func paragraphCount(text string) int {
	n := 0
	for _, p := range paragraphBreak.Split(text, -1) {
		if p != "" {
			n++
		}
	}
	return n
}

func keywords(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) <= keywordMinLen || hasDigit.MatchString(word) {
			continue
		}
		word = keywordPunct.ReplaceAllString(word, "")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
