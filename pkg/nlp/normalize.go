package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reKeyJunk = regexp.MustCompile(`[^a-z0-9+]`)
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeKey приводит написание навыка к ключу словаря:
// нижний регистр, остаются только a-z, 0-9 и "+".
func NormalizeKey(s string) string {
	return reKeyJunk.ReplaceAllString(strings.ToLower(s), "")
}

// NormalizeSkill maps a loosely written skill onto its canonical name.
// Unknown skills come back trimmed with every word capitalized.
func (d *Dictionary) NormalizeSkill(raw string) string {
	if e, ok := d.Lookup(raw); ok {
		return e.Canonical
	}
	return titleWords(strings.ToLower(strings.TrimSpace(raw)))
}

// NormalizeSkillsArray нормализует список навыков из JSON: не-строки отбрасываются,
// порядок сохраняется, дубликаты не схлопываются.
func (d *Dictionary) NormalizeSkillsArray(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, d.NormalizeSkill(s))
	}
	return out
}

// NormalizeText: нижний регистр, всё кроме букв и цифр в пробелы, пробелы схлопнуты.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens splits normalized text into words.
func Tokens(s string) []string {
	n := NormalizeText(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}

// titleWords uppercases the first character of every word (\b\w).
func titleWords(s string) string {
	runes := []rune(s)
	prevWord := false
	for i, r := range runes {
		isWord := r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && !prevWord {
			runes[i] = unicode.ToUpper(r)
		}
		prevWord = isWord
	}
	return string(runes)
}
