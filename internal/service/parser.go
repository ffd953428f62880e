package service

import (
	"regexp"
	"strings"
)

// Defaults used when the provider reply lacks the corresponding section.
const (
	DefaultTitle       = "Creative Recipe"
	DefaultCookingTime = "30 minutes"
	DefaultServings    = "2-4"
	DefaultDifficulty  = "Medium"
)

var (
	emphasisRe     = regexp.MustCompile(`^\*\*|\*\*$`)
	strayQuoteRe   = regexp.MustCompile(`^"|}"|"$`)
	parentheticRe  = regexp.MustCompile(`\(.*\)`)
	stepNumberRe   = regexp.MustCompile(`^\d+\.\s*`)
	labelPrefixRes = map[string]*regexp.Regexp{}
)

// metadataLabels end the instructions block wherever they appear.
var metadataLabels = []string{"cooking_time", "servings", "difficulty"}

func init() {
	for _, label := range []string{"title", "description", "cooking_time", "servings", "difficulty"} {
		labelPrefixRes[label] = regexp.MustCompile(`(?i)^.*` + label + `:\s*`)
	}
}

// ParsedRecipe holds the fields recovered from a provider reply.
type ParsedRecipe struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions string
	CookingTime  string
	Servings     string
	Difficulty   string
}

// ParseRecipeText scans a free-form provider reply line by line and fills every field,
// falling back to defaults for anything it cannot find. fallbackIngredients is used when
// the reply has no ingredients block. It never fails.
//
// Labels match on the first line that contains them, case-insensitively, wherever they
// appear in that line.
func ParseRecipeText(raw string, fallbackIngredients []string) ParsedRecipe {
	lines := nonBlankLines(raw)

	parsed := ParsedRecipe{
		Title:       DefaultTitle,
		Ingredients: fallbackIngredients,
		CookingTime: DefaultCookingTime,
		Servings:    DefaultServings,
		Difficulty:  DefaultDifficulty,
	}

	if v, ok := labelValue(lines, "title"); ok {
		parsed.Title = strings.TrimSpace(strayQuoteRe.ReplaceAllString(v, ""))
	}
	if v, ok := labelValue(lines, "description"); ok {
		parsed.Description = v
	}
	if v, ok := labelValue(lines, "cooking_time"); ok {
		parsed.CookingTime = strings.TrimSpace(parentheticRe.ReplaceAllString(v, ""))
	}
	if v, ok := labelValue(lines, "servings"); ok {
		parsed.Servings = v
	}
	if v, ok := labelValue(lines, "difficulty"); ok {
		parsed.Difficulty = v
	}

	ingredientsAt := indexContaining(lines, "ingredients:")
	instructionsAt := indexContaining(lines, "instructions:")

	if ingredientsAt >= 0 && instructionsAt > ingredientsAt {
		var items []string
		for _, line := range lines[ingredientsAt+1 : instructionsAt] {
			if item, ok := stripBullet(strings.TrimSpace(line)); ok && item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			parsed.Ingredients = items
		}
	}

	if instructionsAt >= 0 {
		var steps []string
		for _, line := range lines[instructionsAt+1:] {
			if containsAny(strings.ToLower(line), metadataLabels) {
				continue
			}
			step := stepNumberRe.ReplaceAllString(strings.TrimSpace(line), "")
			step = strings.TrimSpace(emphasisRe.ReplaceAllString(step, ""))
			if step != "" {
				steps = append(steps, step)
			}
		}
		parsed.Instructions = strings.TrimSpace(strings.Join(steps, "\n"))
	}

	if parsed.Instructions == "" {
		parsed.Instructions = raw
	}

	return parsed
}

func nonBlankLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func indexContaining(lines []string, needle string) int {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			return i
		}
	}
	return -1
}

// labelValue returns the text after "label:" on the first line carrying the label, with
// emphasis markers removed.
func labelValue(lines []string, label string) (string, bool) {
	at := indexContaining(lines, label+":")
	if at < 0 {
		return "", false
	}
	v := labelPrefixRes[label].ReplaceAllString(lines[at], "")
	v = emphasisRe.ReplaceAllString(v, "")
	return strings.TrimSpace(v), true
}

func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "* "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
