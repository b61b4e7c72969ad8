package nonfinite

import (
	"errors"
	"strings"
	"testing"
)

func TestValueNotFoundError_Error(t *testing.T) {
	err := valueNotFoundErrf("items[2]", "expected %s, got unparseable string %q", "float64", "banana")
	var vnf *ValueNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("err = %T, wanted *ValueNotFoundError", err)
	}
	s := err.Error()
	if !strings.Contains(s, "items[2]: ") || !strings.Contains(s, "float64") || !strings.Contains(s, `"banana"`) {
		t.Fatalf("err.Error() = %q, wanted path/float64/banana", s)
	}

	s = valueNotFoundErrf("", "oops %d", 1).Error()
	if s != "oops 1" {
		t.Fatalf("err.Error() = %q, wanted %q", s, "oops 1")
	}
}
