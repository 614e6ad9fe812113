package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// EvidenceRadius: сколько символов контекста берётся с каждой стороны от навыка.
const EvidenceRadius = 50

// MaxYearsExperience caps the years estimate pulled from free text.
const MaxYearsExperience = 50

var reYears = regexp.MustCompile(`(?i)(\d{1,3})\s*\+?\s*(?:years?|yrs?)\b`)

// Evidence returns the excerpt around the first case-insensitive occurrence of skill.
// Offsets are counted in runes and clamped to the text bounds.
func Evidence(text, skill string) (string, bool) {
	if skill == "" || text == "" {
		return "", false
	}
	lowerText := []rune(strings.ToLower(text))
	lowerSkill := []rune(strings.ToLower(skill))
	idx := runeIndex(lowerText, lowerSkill)
	if idx < 0 {
		return "", false
	}
	runes := []rune(text)
	// ToLower может изменить число рун только для экзотических символов; тогда границы по исходному тексту.
	if len(runes) != len(lowerText) {
		runes = lowerText
	}
	start := max(idx-EvidenceRadius, 0)
	end := min(idx+len(lowerSkill)+EvidenceRadius, len(runes))
	return strings.TrimSpace(string(runes[start:end])), true
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// EstimateYearsExperience picks the largest "N years" figure in the resume, capped.
func EstimateYearsExperience(text string) float64 {
	best := 0
	for _, m := range reYears.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	if best > MaxYearsExperience {
		best = MaxYearsExperience
	}
	return float64(best)
}
