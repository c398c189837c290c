package locality

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pilosa/locgen"
	"github.com/pilosa/locgen/termstat"
	"github.com/pilosa/pilosa/logger"
	"github.com/pkg/errors"
)

// Main generates one workload and writes it to a file.
type Main struct {
	Output       string `help:"File to write the workload to. It is truncated if it exists."`
	DecisionSeed int64  `help:"Seed for the hot/cold decision source."`
	ValueSeed    int64  `help:"Seed for the value source. -1 will use current nanosecond."`
	Stats        bool   `help:"Print hot/cold draw counts when done."`
	LogPath      string `help:"Log file to write to. Empty means stderr."`
	Verbose      bool   `help:"Enable verbose logging."`

	Config Config    `flag:"-"`
	Stderr io.Writer `flag:"-"`

	log     logger.Logger
	logFile *os.File
}

// NewMain gets a Main with the default output path, decision seed, and
// locality percent. Config.SizeMB must still be set.
func NewMain() *Main {
	return &Main{
		Output:       DefaultOutputPath,
		DecisionSeed: DecisionSeed,
		ValueSeed:    -1,
		Config:       Config{LocalityPercent: DefaultLocalityPercent},
		Stderr:       os.Stderr,
	}
}

// Run validates the config, generates the workload, and writes it to
// m.Output. Nothing is written if the config is invalid.
func (m *Main) Run() error {
	start := time.Now()
	if err := m.Config.Validate(); err != nil {
		return errors.Wrap(err, "validating configuration")
	}
	if err := m.setupLog(); err != nil {
		return errors.Wrap(err, "setting up logging")
	}
	defer m.closeLog()

	if m.ValueSeed == -1 {
		m.ValueSeed = time.Now().UnixNano()
	}
	m.log.Debugf("decision seed: %d, value seed: %d", m.DecisionSeed, m.ValueSeed)

	var stats locgen.Statter = locgen.NopStatter{}
	var collector *termstat.Collector
	if m.Stats {
		collector = termstat.NewCollector(m.Stderr)
		stats = collector
	}

	gen, err := NewGenerator(
		OptGenDecisionSource(rand.New(rand.NewSource(m.DecisionSeed))),
		OptGenValueSource(rand.New(rand.NewSource(m.ValueSeed))),
		OptGenStatter(stats),
		OptGenLogger(m.log),
	)
	if err != nil {
		return errors.Wrap(err, "getting generator")
	}
	seq, err := gen.Generate(m.Config)
	if err != nil {
		return errors.Wrap(err, "generating")
	}

	f, err := os.Create(m.Output)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	err = WriteSequence(f, seq)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", m.Output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", m.Output)
	}

	if collector != nil {
		collector.Flush()
	}
	m.log.Printf("wrote %d elements (%s, hot boundary %d) to %s in %s",
		len(seq), m.Config.Mode(), m.Config.HotBoundary(), m.Output, time.Since(start))
	return nil
}

func (m *Main) setupLog() error {
	logOut := m.Stderr
	if m.LogPath != "" {
		f, err := os.OpenFile(m.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		logOut = f
		m.logFile = f
	}
	if logOut == nil {
		logOut = os.Stderr
	}

	if m.Verbose {
		m.log = logger.NewVerboseLogger(logOut)
	} else {
		m.log = logger.NewStandardLogger(logOut)
	}
	return nil
}

func (m *Main) closeLog() {
	if m.logFile != nil {
		m.logFile.Close()
		m.logFile = nil
	}
}
