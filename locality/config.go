package locality

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// ElementSize is the size in bytes of one element of the array a workload
	// indexes into.
	ElementSize = 4

	// DecisionSeed seeds the hot/cold decision source unless overridden.
	DecisionSeed = 10

	// DefaultLocalityPercent is used when no locality percent is given, which
	// reproduces the fixed 80/20 skew of the two argument form.
	DefaultLocalityPercent = 20

	// MaxSizeMB keeps NumElements*LocalityPercent within an int.
	MaxSizeMB = maxInt / (1024 * 1024 * 100)

	maxInt = int(^uint(0) >> 1)

	// DefaultOutputPath is where Main writes the workload.
	DefaultOutputPath = "input.txt"
)

// ErrInvalidArgument is the cause of every error returned for missing,
// malformed, or out of range generation parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// Config describes the size and skew of a workload.
type Config struct {
	// SizeMB is the size in megabytes of the array the workload indexes.
	SizeMB int
	// LocalityPercent is the percentage of the key space, from the front,
	// which is treated as hot. Values below 10 produce a uniform workload.
	LocalityPercent int
}

// NumElements is the number of integers in the workload, which is also the
// exclusive upper bound of every value in it.
func (c Config) NumElements() int {
	return c.SizeMB * 1024 * 1024 / ElementSize
}

// HotBoundary is the exclusive upper bound of the hot range [0, HotBoundary).
func (c Config) HotBoundary() int {
	return c.NumElements() * c.LocalityPercent / 100
}

// Decile is the per draw threshold: a decision digit greater than Decile
// selects the hot range.
func (c Config) Decile() int {
	return floorDiv(c.LocalityPercent, 10) - 1
}

// Uniform reports whether the config skips hot/cold biasing entirely. Every
// percent below 10 flattens to the same negative decile as 0.
func (c Config) Uniform() bool {
	return c.Decile() < 0
}

// Mode is a short human readable name for the distribution.
func (c Config) Mode() string {
	if c.Uniform() {
		return "uniform"
	}
	return fmt.Sprintf("%d/%d", (9-c.Decile())*10, c.LocalityPercent)
}

// Validate returns an error with cause ErrInvalidArgument if the config can't
// produce a well formed workload.
func (c Config) Validate() error {
	if c.SizeMB <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "size must be positive, got %d", c.SizeMB)
	}
	if c.SizeMB > MaxSizeMB {
		return errors.Wrapf(ErrInvalidArgument, "size must be at most %d, got %d", MaxSizeMB, c.SizeMB)
	}
	if c.LocalityPercent < 0 || c.LocalityPercent > 100 {
		return errors.Wrapf(ErrInvalidArgument, "locality percent must be in [0,100], got %d", c.LocalityPercent)
	}
	return nil
}

// ParseArgs builds a Config from positional arguments: the size in megabytes
// and, optionally, the locality percent. It does not range check; see
// Validate.
func ParseArgs(args []string) (Config, error) {
	c := Config{LocalityPercent: DefaultLocalityPercent}
	if len(args) < 1 {
		return c, errors.Wrap(ErrInvalidArgument, "size in MB is required")
	}
	if len(args) > 2 {
		return c, errors.Wrapf(ErrInvalidArgument, "expected at most 2 arguments, got %d", len(args))
	}
	var err error
	c.SizeMB, err = strconv.Atoi(args[0])
	if err != nil {
		return c, errors.Wrapf(ErrInvalidArgument, "parsing size %q", args[0])
	}
	if len(args) == 2 {
		c.LocalityPercent, err = strconv.Atoi(args[1])
		if err != nil {
			return c, errors.Wrapf(ErrInvalidArgument, "parsing locality percent %q", args[1])
		}
	}
	return c, nil
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
