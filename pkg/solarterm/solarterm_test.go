package solarterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_Boundaries(t *testing.T) {
	tests := []struct {
		month, day int
		want       int
	}{
		{1, 1, 11},
		{1, 5, 11},
		{1, 6, 12},
		{1, 31, 12},
		{2, 3, 12},
		{2, 4, 1},
		{3, 5, 1},
		{3, 6, 2},
		{4, 4, 2},
		{4, 5, 3},
		{5, 5, 3},
		{5, 6, 4},
		{6, 5, 4},
		{6, 6, 5},
		{7, 6, 5},
		{7, 7, 6},
		{8, 7, 6},
		{8, 8, 7},
		{9, 7, 7},
		{9, 8, 8},
		{9, 18, 8},
		{10, 7, 8},
		{10, 8, 9},
		{11, 6, 9},
		{11, 7, 10},
		{11, 17, 10},
		{12, 6, 10},
		{12, 7, 11},
		{12, 31, 11},
	}
	for _, tt := range tests {
		got, err := Month(tt.month, tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%02d-%02d", tt.month, tt.day)
	}
}

func TestMonth_EverySolarMonthIsContiguous(t *testing.T) {
	// Walk a non-leap year; the solar month may only stay or advance by one.
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	prev, err := Month(1, 1)
	require.NoError(t, err)
	changes := 0
	for m := 1; m <= 12; m++ {
		for d := 1; d <= days[m-1]; d++ {
			got, err := Month(m, d)
			require.NoError(t, err)
			if got != prev {
				assert.Equal(t, prev%12+1, got, "jump at %02d-%02d", m, d)
				_, boundary := IsBoundary(m, d)
				assert.True(t, boundary, "change at %02d-%02d must be a listed boundary", m, d)
				changes++
			}
			prev = got
		}
	}
	assert.Equal(t, 12, changes)
}

func TestMonth_OutOfRange(t *testing.T) {
	_, err := Month(0, 1)
	assert.Error(t, err)
	_, err = Month(13, 1)
	assert.Error(t, err)
	_, err = Month(5, 0)
	assert.Error(t, err)
}

func TestTermName(t *testing.T) {
	assert.Equal(t, "입춘", TermName(1))
	assert.Equal(t, "입동", TermName(10))
	assert.Equal(t, "소한", TermName(12))
	assert.Equal(t, "", TermName(13))
}

func TestBoundaries_ReturnsCopy(t *testing.T) {
	b := Boundaries()
	require.Len(t, b, 12)
	b[1].Day = 99
	got, ok := BoundaryFor(2)
	require.True(t, ok)
	assert.Equal(t, 4, got.Day)
}
