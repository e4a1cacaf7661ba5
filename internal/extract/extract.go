// Package extract parses the three visualization fields out of a free-text
// LLM completion. The upstream model is asked for JSON but routinely answers
// with template literals, markdown fences, or loose prose, so extraction is
// an ordered chain of decode strategies: first success wins, and total
// failure yields a deterministic default instead of an error. Extraction
// never fails; length validation of the result is the caller's job.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Defaults substituted when no strategy matches.
const (
	placeholderCode = "// Generated code here"
	defaultTheme    = "Mathematical harmony"
)

var (
	// Strict format: componentCode as a backtick-quoted template literal plus
	// description and philosophicalTheme as plain quoted strings. The backtick
	// block is the only shape that survives code containing nested double
	// quotes and braces, which is why this path is preferred.
	strictCodeRe  = regexp.MustCompile("(?s)\"componentCode\":\\s*`(.*?)`")
	strictDescRe  = regexp.MustCompile(`"description":\s*"([^"]*?)"`)
	strictThemeRe = regexp.MustCompile(`(?s)"philosophicalTheme":\s*"([^"]*?)"`)

	// Any fenced code block, language tag optional. First block wins.
	fencedCodeRe = regexp.MustCompile("(?s)```(?:jsx|javascript|js)?\\s*(.*?)```")
)

// Result holds the three fields recovered from a completion.
type Result struct {
	ComponentCode      string
	Description        string
	PhilosophicalTheme string
}

// strategy attempts to pull one string out of the raw completion.
type strategy func(text string) (string, bool)

// firstMatch runs strategies in order and returns the first hit,
// falling back to def when none match.
func firstMatch(text, def string, strategies ...strategy) string {
	for _, s := range strategies {
		if v, ok := s(text); ok {
			return v
		}
	}
	return def
}

// Generation extracts {code, description, theme} from a raw LLM completion.
// inspirationWord parameterizes the default description used on total failure.
func Generation(raw, inspirationWord string) Result {
	if r, ok := strict(raw); ok {
		return r
	}

	code := firstMatch(raw, placeholderCode,
		fencedBlock,
		keyedSection("componentCode"),
	)
	desc := firstMatch(raw,
		fmt.Sprintf("A mathematical visualization inspired by %s", inspirationWord),
		keyedSection("description"),
	)
	theme := firstMatch(raw, defaultTheme,
		keyedSection("philosophicalTheme"),
	)

	return Result{
		ComponentCode:      code,
		Description:        desc,
		PhilosophicalTheme: theme,
	}
}

// strict requires all three fields in the template-literal format; partial
// matches fall through to the generic chain.
func strict(text string) (Result, bool) {
	codeMatch := strictCodeRe.FindStringSubmatch(text)
	descMatch := strictDescRe.FindStringSubmatch(text)
	themeMatch := strictThemeRe.FindStringSubmatch(text)

	if codeMatch == nil || descMatch == nil || themeMatch == nil {
		return Result{}, false
	}

	return Result{
		ComponentCode:      strings.TrimSpace(codeMatch[1]),
		Description:        descMatch[1],
		PhilosophicalTheme: themeMatch[1],
	}, true
}

// fencedBlock returns the trimmed contents of the first fenced code block.
func fencedBlock(text string) (string, bool) {
	m := fencedCodeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// keyedSection extracts a named field with three patterns tried in order:
// quoted JSON field, bare key with quoted value, bare key with an unquoted
// value running to end of line or closing brace.
func keyedSection(key string) strategy {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)"` + key + `":\s*"([^"]*)"`),
		regexp.MustCompile(`(?i)` + key + `:\s*"([^"]*)"`),
		regexp.MustCompile(`(?i)` + key + `:\s*([^` + "\n" + `}]+)`),
	}

	return func(text string) (string, bool) {
		for _, p := range patterns {
			if m := p.FindStringSubmatch(text); m != nil {
				if v := strings.TrimSpace(m[1]); v != "" {
					return v, true
				}
			}
		}
		return "", false
	}
}
