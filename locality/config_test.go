package locality_test

import (
	"testing"

	"github.com/pilosa/locgen/locality"
	"github.com/pkg/errors"
)

func TestConfigLayout(t *testing.T) {
	tests := []struct {
		cfg      locality.Config
		elements int
		boundary int
		decile   int
		uniform  bool
		mode     string
	}{
		{cfg: locality.Config{SizeMB: 1, LocalityPercent: 20}, elements: 262144, boundary: 52428, decile: 1, mode: "80/20"},
		{cfg: locality.Config{SizeMB: 1, LocalityPercent: 0}, elements: 262144, boundary: 0, decile: -1, uniform: true, mode: "uniform"},
		{cfg: locality.Config{SizeMB: 1, LocalityPercent: 9}, elements: 262144, boundary: 23592, decile: -1, uniform: true, mode: "uniform"},
		{cfg: locality.Config{SizeMB: 1, LocalityPercent: 10}, elements: 262144, boundary: 26214, decile: 0, mode: "90/10"},
		{cfg: locality.Config{SizeMB: 4, LocalityPercent: 35}, elements: 1048576, boundary: 367001, decile: 2, mode: "70/35"},
		{cfg: locality.Config{SizeMB: 2, LocalityPercent: 100}, elements: 524288, boundary: 524288, decile: 9, mode: "0/100"},
	}

	for _, test := range tests {
		t.Run(test.cfg.Mode(), func(t *testing.T) {
			if got := test.cfg.NumElements(); got != test.elements {
				t.Errorf("elements: exp %d, got %d", test.elements, got)
			}
			if got := test.cfg.HotBoundary(); got != test.boundary {
				t.Errorf("boundary: exp %d, got %d", test.boundary, got)
			}
			if got := test.cfg.Decile(); got != test.decile {
				t.Errorf("decile: exp %d, got %d", test.decile, got)
			}
			if got := test.cfg.Uniform(); got != test.uniform {
				t.Errorf("uniform: exp %v, got %v", test.uniform, got)
			}
			if got := test.cfg.Mode(); got != test.mode {
				t.Errorf("mode: exp %s, got %s", test.mode, got)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  locality.Config
		ok   bool
	}{
		{name: "ok", cfg: locality.Config{SizeMB: 1, LocalityPercent: 20}, ok: true},
		{name: "zero percent", cfg: locality.Config{SizeMB: 1}, ok: true},
		{name: "full percent", cfg: locality.Config{SizeMB: 1, LocalityPercent: 100}, ok: true},
		{name: "zero size", cfg: locality.Config{LocalityPercent: 20}},
		{name: "negative size", cfg: locality.Config{SizeMB: -3, LocalityPercent: 20}},
		{name: "max size", cfg: locality.Config{SizeMB: locality.MaxSizeMB, LocalityPercent: 100}, ok: true},
		{name: "size overflows", cfg: locality.Config{SizeMB: locality.MaxSizeMB + 1, LocalityPercent: 20}},
		{name: "huge size", cfg: locality.Config{SizeMB: 1 << 43, LocalityPercent: 20}},
		{name: "negative percent", cfg: locality.Config{SizeMB: 1, LocalityPercent: -1}},
		{name: "percent over 100", cfg: locality.Config{SizeMB: 1, LocalityPercent: 101}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if errors.Cause(err) != locality.ErrInvalidArgument {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args   []string
		exp    locality.Config
		expErr string
	}{
		{args: []string{"1", "20"}, exp: locality.Config{SizeMB: 1, LocalityPercent: 20}},
		{args: []string{"8", "0"}, exp: locality.Config{SizeMB: 8, LocalityPercent: 0}},
		{args: []string{"16"}, exp: locality.Config{SizeMB: 16, LocalityPercent: locality.DefaultLocalityPercent}},
		{args: []string{}, expErr: "size in MB is required: invalid argument"},
		{args: []string{"one"}, expErr: `parsing size "one": invalid argument`},
		{args: []string{"1", "20%"}, expErr: `parsing locality percent "20%": invalid argument`},
		{args: []string{"1", "20", "3"}, expErr: "expected at most 2 arguments, got 3: invalid argument"},
	}

	for _, test := range tests {
		t.Run(argsName(test.args), func(t *testing.T) {
			cfg, err := locality.ParseArgs(test.args)
			if test.expErr != "" {
				if err == nil {
					t.Fatalf("nil err, expected %s", test.expErr)
				}
				if err.Error() != test.expErr {
					t.Fatalf("unmatched errs exp/got\n%s\n%v", test.expErr, err)
				}
				if errors.Cause(err) != locality.ErrInvalidArgument {
					t.Fatalf("cause should be ErrInvalidArgument, got %v", errors.Cause(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}
			if cfg != test.exp {
				t.Fatalf("exp %+v, got %+v", test.exp, cfg)
			}
		})
	}
}

func argsName(args []string) string {
	s := "args"
	for _, a := range args {
		s += "_" + a
	}
	return s
}
