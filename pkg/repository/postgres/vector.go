package postgres

import (
	"github.com/pgvector/pgvector-go"
)

// toVector maps an empty embedding to SQL NULL.
func toVector(v []float32) *pgvector.Vector {
	if len(v) == 0 {
		return nil
	}
	vec := pgvector.NewVector(v)
	return &vec
}

func fromVector(v *pgvector.Vector) []float32 {
	if v == nil {
		return nil
	}
	return v.Slice()
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
