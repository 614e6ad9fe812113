package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/config"
	"github.com/artem13815/talentmatch/pkg/match"
)

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	cid := uuid.New()
	require.NoError(t, printMatches(&buf, []match.Match{
		{CandidateID: cid, FinalScore: 0.81234, SemanticScore: 0.9, SkillScore: 0.75, ExperienceScore: 0.6,
			MissingSkills: []string{"Rust", "Kafka"}, Candidate: &match.CandidateSummary{Name: "Jane Roe"}},
		{CandidateID: cid, FinalScore: 0.2},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CANDIDATE")
	assert.Contains(t, lines[1], "Jane Roe")
	assert.Contains(t, lines[1], "0.812")
	assert.Contains(t, lines[1], "Rust, Kafka")
	assert.Contains(t, lines[2], cid.String())
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ids, err := parseIDs([]string{a.String(), b.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = parseIDs([]string{"nope"})
	assert.Error(t, err)
}

func TestWireInMemory(t *testing.T) {
	cfg := config.Config{
		EmbeddingProvider: "hashing",
		UploadDir:         t.TempDir(),
		WeightSemantic:    0.6,
		WeightSkill:       0.3,
		WeightExperience:  0.1,
	}
	svc, err := wire(t.Context(), cfg, zap.NewNop(), false)
	require.NoError(t, err)
	defer svc.Close()
	assert.NotNil(t, svc.matches)
	assert.NoError(t, svc.readiness.Ready(t.Context()))

	_, err = wire(t.Context(), cfg, zap.NewNop(), true)
	assert.Error(t, err)
}

func TestWireRejectsUnknownProvider(t *testing.T) {
	cfg := config.Config{EmbeddingProvider: "word2vec", UploadDir: t.TempDir(), WeightSemantic: 1}
	_, err := wire(t.Context(), cfg, zap.NewNop(), false)
	assert.ErrorContains(t, err, "EMBEDDING_PROVIDER")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	user := uuid.New()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--user", user.String()})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), user.String())
	assert.Contains(t, out.String(), "token: ")
}
