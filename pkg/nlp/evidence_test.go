package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidence(t *testing.T) {
	text := strings.Repeat("a", 60) + " Kubernetes " + strings.Repeat("b", 60)

	got, ok := Evidence(text, "kubernetes")
	require.True(t, ok)
	assert.True(t, strings.Contains(got, "Kubernetes"))
	assert.Equal(t, 2*EvidenceRadius+len("Kubernetes"), len([]rune(got)))
}

func TestEvidenceClampsAtEdges(t *testing.T) {
	got, ok := Evidence("Go and Docker", "go")
	require.True(t, ok)
	assert.Equal(t, "Go and Docker", got)
}

func TestEvidenceUsesFirstOccurrence(t *testing.T) {
	text := "python early. " + strings.Repeat("x", 80) + " python late"
	got, ok := Evidence(text, "Python")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(got, "python early"))
	assert.NotContains(t, got, "late")
}

func TestEvidenceRunes(t *testing.T) {
	text := strings.Repeat("я", 70) + "Go" + strings.Repeat("ж", 70)
	got, ok := Evidence(text, "go")
	require.True(t, ok)
	assert.Equal(t, 102, len([]rune(got)))
}

func TestEvidenceMissing(t *testing.T) {
	_, ok := Evidence("nothing here", "rust")
	assert.False(t, ok)
	_, ok = Evidence("text", "")
	assert.False(t, ok)
}

func TestEstimateYearsExperience(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"5 years of experience with Go", 5},
		{"3 yrs backend, 7+ years overall", 7},
		{"1 year", 1},
		{"over 120 years of combined team experience", MaxYearsExperience},
		{"no numbers here", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateYearsExperience(tt.text), tt.text)
	}
}
