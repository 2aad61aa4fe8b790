package calculator

import (
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		in   string
		want Op
	}{
		{"add", OpAdd},
		{"+", OpAdd},
		{"ADD", OpAdd},
		{" plus ", OpAdd},
		{"subtract", OpSubtract},
		{"sub", OpSubtract},
		{"-", OpSubtract},
		{"multiply", OpMultiply},
		{"mul", OpMultiply},
		{"*", OpMultiply},
		{"x", OpMultiply},
		{"divide", OpDivide},
		{"div", OpDivide},
		{"/", OpDivide},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseOp(tc.in)
			if err != nil {
				t.Fatalf("ParseOp(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseOp(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseOpUnknown(t *testing.T) {
	for _, in := range []string{"", "mod", "%", "^"} {
		if _, err := ParseOp(in); !errors.Is(err, ErrUnknownOp) {
			t.Errorf("ParseOp(%q) error = %v, want ErrUnknownOp", in, err)
		}
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		op       Op
		a, b     int
		expected int
	}{
		{OpAdd, 3, 4, 7},
		{OpSubtract, 10, 5, 5},
		{OpMultiply, 3, 4, 12},
		{OpDivide, 10, 5, 2},
	}

	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			got, err := Apply(tc.op, tc.a, tc.b)
			if err != nil {
				t.Fatalf("Apply(%s) error = %v", tc.op, err)
			}
			if got != tc.expected {
				t.Errorf("Apply(%s, %d, %d) = %d, want %d", tc.op, tc.a, tc.b, got, tc.expected)
			}
		})
	}

	if _, err := Apply(Op("pow"), 2, 3); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Apply(pow) error = %v, want ErrUnknownOp", err)
	}
}

func TestComputeAndString(t *testing.T) {
	r, err := Compute(OpMultiply, 3, 4)
	if err != nil {
		t.Fatalf("Compute error = %v", err)
	}
	if r.Value != 12 {
		t.Errorf("Value = %d, want 12", r.Value)
	}
	if got := r.String(); got != "3 * 4 = 12" {
		t.Errorf("String() = %q, want %q", got, "3 * 4 = 12")
	}

	if _, err := Compute(OpDivide, 3, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Compute(divide, 3, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestOpSymbolAndValid(t *testing.T) {
	for _, op := range Ops {
		if !op.Valid() {
			t.Errorf("%s should be valid", op)
		}
		if op.Symbol() == "?" {
			t.Errorf("%s has no symbol", op)
		}
	}
	if Op("nope").Valid() {
		t.Error("unknown op reported valid")
	}
}
