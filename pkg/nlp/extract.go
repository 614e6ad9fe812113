package nlp

// ExtractSkills returns the set of canonical skills mentioned in text, in dictionary order.
// An entry stops at its first matching synonym.
func (d *Dictionary) ExtractSkills(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	for i, e := range d.entries {
		for _, re := range d.patterns[i] {
			if re.MatchString(text) {
				found = append(found, e.Canonical)
				break
			}
		}
	}
	return found
}
