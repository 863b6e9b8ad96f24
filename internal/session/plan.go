package session

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/kanatui/internal/kana"
)

// Plan is the order in which kana are drilled. The first entry becomes the
// current kana when a session starts; the rest form the work queue.
type Plan struct {
	Kana []kana.Kana
}

// Len returns the number of kana in the plan.
func (p Plan) Len() int {
	return len(p.Kana)
}

// Planner builds a session plan from the kana in play.
type Planner interface {
	// BuildPlan returns a permutation of symbols.
	BuildPlan(symbols []kana.Kana) Plan
}

// ShufflePlanner builds uniformly shuffled plans.
type ShufflePlanner struct {
	rnd *rand.Rand
}

var _ Planner = (*ShufflePlanner)(nil)

// NewPlanner creates a ShufflePlanner drawing from rnd. A nil rnd is
// replaced by a time-seeded source.
func NewPlanner(rnd *rand.Rand) *ShufflePlanner {
	if rnd == nil {
		rnd = newRand()
	}
	return &ShufflePlanner{rnd: rnd}
}

// BuildPlan shuffles a copy of symbols.
func (p *ShufflePlanner) BuildPlan(symbols []kana.Kana) Plan {
	return BuildPlan(symbols, p.rnd)
}

// BuildPlan returns a Fisher-Yates permutation of symbols. The input slice is
// not modified. An empty symbol set is a programming error.
func BuildPlan(symbols []kana.Kana, rnd *rand.Rand) Plan {
	if len(symbols) == 0 {
		panic("session: cannot build a plan from an empty kana set")
	}
	if rnd == nil {
		rnd = newRand()
	}

	order := make([]kana.Kana, len(symbols))
	copy(order, symbols)
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return Plan{Kana: order}
}

// NewSeededRand returns a deterministic source, used by --seed and tests.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRand() *rand.Rand {
	return NewSeededRand(uint64(time.Now().UnixNano()))
}
