package either_test

import (
	"strconv"
	"testing"

	"github.com/kasparund/persist/either"
)

func TestEitherMatch(t *testing.T) {
	one := either.Left[int, string](1)

	var n int
	switch m := one.Match(); m {
	case m.Left(&n):
		t.Logf("Left(%d)", n)
	case m.Right(nil):
		t.Error("expected Left(1), matched Right")
	}
	if n != 1 {
		t.Errorf("expected n to be 1, is %#v", n)
	}
}

func TestEitherIsLeftRight(t *testing.T) {
	l := either.Left[int, string](1)
	r := either.Right[int, string]("2")

	if !l.IsLeft() || l.IsRight() {
		t.Error("expected Left(1) to report IsLeft()")
	}
	if !r.IsRight() || r.IsLeft() {
		t.Error("expected Right(\"2\") to report IsRight()")
	}
}

func TestMapRight(t *testing.T) {
	r := either.Right[int, string]("2")
	mapped := either.MapRight(Atoi, r)

	var n int
	switch m := mapped.Match(); m {
	case m.Right(&n):
	case m.Left(nil):
		t.Error("expected Right after MapRight, got Left")
	}
	if n != 2 {
		t.Errorf("expected mapped value 2, is %#v", n)
	}

	l := either.Left[int, string](7)
	mapped = either.MapRight(Atoi, l)
	var n2 int
	switch m := mapped.Match(); m {
	case m.Left(&n2):
	case m.Right(nil):
		t.Error("expected Left to pass through MapRight unchanged")
	}
	if n2 != 7 {
		t.Errorf("expected passthrough value 7, is %#v", n2)
	}
}

func TestAndThen(t *testing.T) {
	safeAtoi := func(s string) either.Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return either.Left[string, int](err.Error())
		}
		return either.Right[string, int](n)
	}

	ok := either.AndThen(safeAtoi, either.Right[string, string]("42"))
	var n int
	switch m := ok.Match(); m {
	case m.Right(&n):
	case m.Left(nil):
		t.Error("expected Right(42)")
	}
	if n != 42 {
		t.Errorf("expected 42, is %#v", n)
	}

	bad := either.AndThen(safeAtoi, either.Left[string, string]("boom"))
	var msg string
	switch m := bad.Match(); m {
	case m.Left(&msg):
	case m.Right(nil):
		t.Error("expected Left to short-circuit AndThen")
	}
	if msg != "boom" {
		t.Errorf("expected short-circuited message, is %#v", msg)
	}
}

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
