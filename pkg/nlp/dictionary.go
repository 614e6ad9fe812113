package nlp

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
)

//go:embed dictionary.yaml
var defaultDictionaryYAML []byte

// SkillEntry: каноническое имя навыка и формы, под которыми он встречается в тексте.
type SkillEntry struct {
	Canonical string   `yaml:"canonical"`
	Synonyms  []string `yaml:"synonyms"`
}

// Dictionary is an immutable skill dictionary with a lookup index and
// precompiled whole-word patterns. Safe for concurrent use.
type Dictionary struct {
	entries  []SkillEntry
	index    map[string]int
	patterns [][]*regexp.Regexp
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default возвращает словарь, встроенный в бинарь.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := ParseDictionary(defaultDictionaryYAML)
		if err != nil {
			panic(fmt.Sprintf("nlp: embedded dictionary: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// LoadDictionary reads a YAML dictionary from path. Empty path yields Default().
func LoadDictionary(path string) (*Dictionary, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill dictionary: %w", err)
	}
	return ParseDictionary(data)
}

func ParseDictionary(data []byte) (*Dictionary, error) {
	var entries []SkillEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode skill dictionary: %w", err)
	}
	return NewDictionary(entries)
}

// NewDictionary строит индекс по каноническим именам и синонимам.
// Два разных навыка с одинаковым ключом считаются ошибкой словаря.
func NewDictionary(entries []SkillEntry) (*Dictionary, error) {
	d := &Dictionary{
		entries:  make([]SkillEntry, 0, len(entries)),
		index:    make(map[string]int),
		patterns: make([][]*regexp.Regexp, 0, len(entries)),
	}
	for _, e := range entries {
		canonical := strings.TrimSpace(e.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("skill dictionary: entry without canonical name")
		}
		pos := len(d.entries)
		forms := append([]string{canonical}, e.Synonyms...)
		var synonyms []string
		var patterns []*regexp.Regexp
		for i, form := range forms {
			form = strings.TrimSpace(form)
			key := NormalizeKey(form)
			if key == "" {
				return nil, fmt.Errorf("skill dictionary: %q has an empty lookup key", form)
			}
			if prev, ok := d.index[key]; ok && prev != pos {
				return nil, fmt.Errorf("skill dictionary: key %q of %q already belongs to %q",
					key, canonical, d.entries[prev].Canonical)
			}
			d.index[key] = pos
			if i == 0 {
				continue
			}
			synonyms = append(synonyms, form)
			patterns = append(patterns, wholeWord(form))
		}
		d.entries = append(d.entries, SkillEntry{Canonical: canonical, Synonyms: synonyms})
		d.patterns = append(d.patterns, patterns)
	}
	return d, nil
}

// Entries returns a copy of the dictionary entries in file order.
func (d *Dictionary) Entries() []SkillEntry {
	out := make([]SkillEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Dictionary) Len() int { return len(d.entries) }

// Lookup ищет навык по ключу нормализации.
func (d *Dictionary) Lookup(raw string) (SkillEntry, bool) {
	i, ok := d.index[NormalizeKey(raw)]
	if !ok {
		return SkillEntry{}, false
	}
	return d.entries[i], true
}

// wholeWord matches the literal synonym only when it is not glued to a letter or digit,
// so "java" does not fire inside "javascript" while "c++" still works.
// A synonym edge that is punctuation needs no boundary: ".net" fires inside "ASP.NET".
// A leading letter or digit must not follow a dot either, so "js" stays silent in "Node.js".
func wholeWord(synonym string) *regexp.Regexp {
	var left, right string
	if first, _ := utf8.DecodeRuneInString(synonym); isWordRune(first) {
		left = `(?:^|[^\p{L}\p{N}.])`
	}
	if last, _ := utf8.DecodeLastRuneInString(synonym); isWordRune(last) {
		right = `(?:$|[^\p{L}\p{N}])`
	}
	return regexp.MustCompile(`(?i)` + left + regexp.QuoteMeta(synonym) + right)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
