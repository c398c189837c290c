package termstat_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pilosa/locgen"
	"github.com/pilosa/locgen/termstat"
)

var _ locgen.Statter = &termstat.Collector{}

func TestCollectorFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	c := termstat.NewCollector(buf)

	c.Flush()
	if buf.Len() != 0 {
		t.Fatalf("flush with nothing counted wrote %q", buf.String())
	}

	c.Count("hot", 6, 1)
	c.Count("cold", 2, 1)
	c.Count("hot", 2, 0.1)
	c.Timing("gen", time.Second, 1)
	c.Flush()

	exp := "hot: 8 cold: 2 gen: 1s hot%: 80.00 cold%: 20.00\n"
	if buf.String() != exp {
		t.Fatalf("unexpected output\nexp: %q\ngot: %q", exp, buf.String())
	}
	if c.Value("hot") != 8 {
		t.Fatalf("hot: %d", c.Value("hot"))
	}
	if c.Value("nope") != 0 {
		t.Fatalf("uncounted name should be zero, got %d", c.Value("nope"))
	}
}

func TestCollectorSingleCounter(t *testing.T) {
	buf := &bytes.Buffer{}
	c := termstat.NewCollector(buf)
	c.Count("uniform", 10, 1)
	c.Flush()
	if strings.Contains(buf.String(), "%") {
		t.Fatalf("single counter should not print shares: %q", buf.String())
	}
}
