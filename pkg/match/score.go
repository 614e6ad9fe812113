package match

import (
	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/nlp"
	"github.com/artem13815/talentmatch/pkg/scoring"
)

// ScoreCandidate computes every scoring field of the pair. Skill matching looks at the raw
// resume text, not at candidate.ParsedSkills, so scoring does not depend on extraction.
func ScoreCandidate(j job.Job, c candidate.Candidate, w scoring.Weights) Result {
	semantic := scoring.CosineSimilarity(j.Embedding, c.Embedding)
	matched, missing, skill := scoring.SkillMatch(j.RequiredSkills, c.ResumeText)
	experience := scoring.ExperienceScore(c.YearsExperience)
	return Result{
		JobID:            j.ID,
		CandidateID:      c.ID,
		SemanticScore:    semantic,
		SkillScore:       skill,
		ExperienceScore:  experience,
		FinalScore:       w.Final(semantic, skill, experience),
		MatchedSkills:    matched,
		MissingSkills:    missing,
		EvidenceSnippets: EvidenceFor(c.ResumeText, matched),
	}
}

// EvidenceFor returns a snippet per matched skill; skills without one are dropped.
func EvidenceFor(text string, skills []string) []Evidence {
	out := make([]Evidence, 0, len(skills))
	for _, s := range skills {
		if snippet, ok := nlp.Evidence(text, s); ok {
			out = append(out, Evidence{Skill: s, Snippet: snippet})
		}
	}
	return out
}
