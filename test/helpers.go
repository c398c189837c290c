package test

import (
	"io/ioutil"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// MustBe uses reflect.DeepEqual to assert that thing1 and thing2 are equal, and
// fails otherwise.
func MustBe(t *testing.T, thing1, thing2 interface{}, context ...string) {
	t.Helper()
	var ctx string
	if len(context) > 0 {
		ctx = context[0] + ": "
	}
	if !reflect.DeepEqual(thing1, thing2) {
		t.Fatalf("%v'%#v' != '%#v'", ctx, thing1, thing2)
	}
}

// ErrNil fails with ctx if err is not nil.
func ErrNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%v: %v", ctx, err)
	}
}

// ReadSequence reads a workload file and returns its integers. It fails if
// the file contains anything other than single space separated integers.
func ReadSequence(t *testing.T, path string) []int {
	t.Helper()
	data, err := ioutil.ReadFile(path)
	ErrNil(t, err, "reading "+path)
	if len(data) == 0 {
		return []int{}
	}
	fields := strings.Split(string(data), " ")
	seq := make([]int, len(fields))
	for i, f := range fields {
		seq[i], err = strconv.Atoi(f)
		if err != nil {
			t.Fatalf("element %d of %s: %v", i, path, err)
		}
	}
	return seq
}
