package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"  C++  ":  "c++",
		"Node.js":  "nodejs",
		"CI/CD":    "cicd",
		"REST API": "restapi",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestNormalizeSkill(t *testing.T) {
	d := Default()
	tests := []struct {
		in   string
		want string
	}{
		{"js", "JavaScript"},
		{"JAVASCRIPT", "JavaScript"},
		{"nodejs", "Node.js"},
		{"node.js", "Node.js"},
		{"k8s", "Kubernetes"},
		{"  C++  ", "C++"},
		{"golang", "Go"},
		{"machine vision", "Machine Vision"},
		{"  quantum   COMPUTING ", "Quantum   Computing"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, d.NormalizeSkill(tt.in))
		})
	}
}

func TestNormalizeSkillsArray(t *testing.T) {
	d := Default()
	got := d.NormalizeSkillsArray([]any{"  C++  ", "nodejs", 42, "Python"})
	assert.Equal(t, []string{"C++", "Node.js", "Python"}, got)

	// дубликаты остаются
	got = d.NormalizeSkillsArray([]any{"js", "JavaScript", nil, true})
	assert.Equal(t, []string{"JavaScript", "JavaScript"}, got)

	assert.Empty(t, d.NormalizeSkillsArray(nil))
}

func TestNormalizeTextAndTokens(t *testing.T) {
	assert.Equal(t, "go pgx postgresql", NormalizeText("  Go/pgx, PostgreSQL!! "))
	assert.Equal(t, []string{"senior", "go", "developer"}, Tokens("Senior Go-developer"))
	assert.Nil(t, Tokens(" ... "))
}
