package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalMarks(t *testing.T) {
	assert.Equal(t, 120.0, ComputeTotalMarks(42, 78))
	assert.Equal(t, 0.0, ComputeTotalMarks(0, 0))
	assert.Equal(t, 200.0, ComputeTotalMarks(100, 100))
}

func TestDeriveGrade(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  string
	}{
		{"perfect score", 200, "A+"},
		{"A+ boundary", 180, "A+"},
		{"just under A+", 179, "A"},
		{"A boundary", 160, "A"},
		{"B+ boundary", 140, "B+"},
		{"B boundary", 120, "B"},
		{"C boundary", 100, "C"},
		{"D boundary", 80, "D"},
		{"just under D", 79, "F"},
		{"zero", 0, "F"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveGrade(tc.total))
		})
	}
}
