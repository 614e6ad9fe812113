package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/artem13815/talentmatch/pkg/nlp"
)

// DefaultHashingDimensions is used when Hashing is built with a non-positive size.
const DefaultHashingDimensions = 256

// Hashing: локальный детерминированный embedder (feature hashing по токенам).
// Не требует сети; годится для разработки и тестов, семантики он не понимает.
type Hashing struct {
	dims int
}

func NewHashing(dims int) *Hashing {
	if dims <= 0 {
		dims = DefaultHashingDimensions
	}
	return &Hashing{dims: dims}
}

func (h *Hashing) Dimensions() int { return h.dims }

func (h *Hashing) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float64, h.dims)
	for _, tok := range nlp.Tokens(text) {
		hs := fnv.New32a()
		_, _ = hs.Write([]byte(tok))
		sum := hs.Sum32()
		sign := 1.0
		if sum&1 == 1 {
			sign = -1
		}
		vec[int(sum>>1)%h.dims] += sign
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	out := make([]float32, h.dims)
	if norm == 0 {
		return out, nil
	}
	norm = math.Sqrt(norm)
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out, nil
}
