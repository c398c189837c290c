package locality

import (
	"math/rand"
	"time"

	"github.com/pilosa/locgen"
	"github.com/pilosa/pilosa/logger"
)

// Stat names reported by Generator. StatHot and StatCold count the values
// which landed in each range.
const (
	StatHot      = "locality.hot"
	StatCold     = "locality.cold"
	StatUniform  = "locality.uniform"
	StatGenerate = "locality.generate"
)

// Generator draws locality skewed workloads. It owns two independent random
// sources: the decision source picks hot or cold for each element, and the
// value source picks the element within the chosen range. Only the decision
// source is deterministically seeded by default, so the hot/cold pattern of a
// workload repeats between runs while its values do not.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	decisions *rand.Rand
	values    *rand.Rand

	stats locgen.Statter
	log   logger.Logger
}

// GeneratorOption is a functional option for Generator.
type GeneratorOption func(g *Generator) error

// OptGenDecisionSource sets the random source used for hot/cold decisions.
func OptGenDecisionSource(r *rand.Rand) GeneratorOption {
	return func(g *Generator) error {
		g.decisions = r
		return nil
	}
}

// OptGenValueSource sets the random source used to pick values within the
// hot or cold range.
func OptGenValueSource(r *rand.Rand) GeneratorOption {
	return func(g *Generator) error {
		g.values = r
		return nil
	}
}

// OptGenStatter sets the Statter which receives hot/cold counters.
func OptGenStatter(s locgen.Statter) GeneratorOption {
	return func(g *Generator) error {
		g.stats = s
		return nil
	}
}

// OptGenLogger sets the logger.
func OptGenLogger(l logger.Logger) GeneratorOption {
	return func(g *Generator) error {
		g.log = l
		return nil
	}
}

// NewGenerator gets a Generator whose decision source is seeded with
// DecisionSeed and whose value source is seeded from the clock, unless
// overridden by opts.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		decisions: rand.New(rand.NewSource(DecisionSeed)),
		values:    rand.New(rand.NewSource(time.Now().UnixNano())),
		stats:     locgen.NopStatter{},
		log:       logger.NopLogger,
	}
	for _, opt := range opts {
		err := opt(g)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Draw makes one hot/cold decision for cfg and returns a value from the
// chosen range along with whether that value lies in the hot range. If the
// chosen range is empty the value comes from the other one, and hot reports
// the range actually used. cfg must be valid. Draw ignores cfg.Uniform; use
// Generate for whole workloads.
func (g *Generator) Draw(cfg Config) (value int, hot bool) {
	n, boundary := cfg.NumElements(), cfg.HotBoundary()
	hot = g.decisions.Intn(10) > cfg.Decile()
	switch {
	case hot && boundary == 0:
		hot = false
	case !hot && boundary >= n:
		hot = true
	}
	if hot {
		return g.values.Intn(boundary), true
	}
	return boundary + g.values.Intn(n-boundary), false
}

// Generate returns the full workload for cfg. Every value is in
// [0, cfg.NumElements()).
func (g *Generator) Generate(cfg Config) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() { g.stats.Timing(StatGenerate, time.Since(start), 1) }()

	n := cfg.NumElements()
	seq := make([]int, n)
	g.log.Debugf("generating %d elements, hot boundary %d, decile %d", n, cfg.HotBoundary(), cfg.Decile())

	if cfg.Uniform() {
		if cfg.LocalityPercent != 0 {
			g.log.Printf("locality percent %d is below 10, generating a uniform workload", cfg.LocalityPercent)
		}
		for i := range seq {
			seq[i] = g.values.Intn(n)
		}
		g.stats.Count(StatUniform, int64(n), 1)
		return seq, nil
	}

	var hotCount int64
	for i := range seq {
		v, hot := g.Draw(cfg)
		if hot {
			hotCount++
		}
		seq[i] = v
	}
	g.stats.Count(StatHot, hotCount, 1)
	g.stats.Count(StatCold, int64(n)-hotCount, 1)
	return seq, nil
}
