package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 2, 3, 5},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive result", 5, 3, 2},
		{"zeros", 0, 0, 0},
		{"negative result", 1, 5, -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 2, 3, 6},
		{"multiply by zero", 0, 5, 0},
		{"negative and positive", -2, 3, -6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"exact quotient", 10, 5, 2},
		{"truncates positive", 7, 2, 3},
		{"truncates toward zero", -7, 2, -3},
		{"negative divisor", 9, -3, -3},
		{"zero dividend", 0, 7, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Divide(%d, %d) error = %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Divide(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int{0, 1, -1, 42, math.MaxInt, math.MinInt} {
		result, err := Divide(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(%d, 0) error = %v, want ErrDivisionByZero", a, err)
		}
		if result != 0 {
			t.Errorf("Divide(%d, 0) = %d, want 0", a, result)
		}
	}
}

func TestDivideMinIntByMinusOne(t *testing.T) {
	result, err := Divide(math.MinInt, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != math.MinInt {
		t.Errorf("Divide(MinInt, -1) = %d, want MinInt", result)
	}
}

func TestMultiplyByZeroIsNotOne(t *testing.T) {
	if got := Multiply(0, 1); got == 1 {
		t.Errorf("Multiply(0, 1) = %d, want anything but 1", got)
	}
}

func TestCalculatorMethods(t *testing.T) {
	var calc Calculator

	if got := calc.Add(3, 4); got != 7 {
		t.Errorf("Add(3, 4) = %d, want 7", got)
	}
	if got := calc.Subtract(10, 5); got != 5 {
		t.Errorf("Subtract(10, 5) = %d, want 5", got)
	}
	if got := calc.Multiply(3, 4); got != 12 {
		t.Errorf("Multiply(3, 4) = %d, want 12", got)
	}
	got, err := calc.Divide(10, 5)
	if err != nil || got != 2 {
		t.Errorf("Divide(10, 5) = %d, %v, want 2, nil", got, err)
	}
	if _, err := calc.Apply(OpDivide, 1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Apply(divide, 1, 0) error = %v, want ErrDivisionByZero", err)
	}
}
