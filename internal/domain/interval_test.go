package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"real intersection", Interval{690, 720}, Interval{680, 700}, true},
		{"contained", Interval{540, 720}, Interval{600, 630}, true},
		{"touching left boundary", Interval{690, 720}, Interval{660, 690}, false},
		{"touching right boundary", Interval{690, 720}, Interval{720, 750}, false},
		{"disjoint", Interval{540, 600}, Interval{660, 720}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name  string
		input []Interval
		want  []Interval
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "single",
			input: []Interval{{600, 630}},
			want:  []Interval{{600, 630}},
		},
		{
			name:  "overlapping coalesce",
			input: []Interval{{600, 660}, {630, 690}},
			want:  []Interval{{600, 690}},
		},
		{
			name:  "adjacent coalesce",
			input: []Interval{{600, 630}, {630, 660}},
			want:  []Interval{{600, 660}},
		},
		{
			name:  "unsorted disjoint",
			input: []Interval{{700, 720}, {540, 600}},
			want:  []Interval{{540, 600}, {700, 720}},
		},
		{
			name:  "contained dropped into container",
			input: []Interval{{540, 720}, {600, 630}},
			want:  []Interval{{540, 720}},
		},
		{
			name:  "empty and inverted ranges dropped",
			input: []Interval{{600, 600}, {700, 650}, {540, 570}},
			want:  []Interval{{540, 570}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeIntervals(tt.input))
		})
	}
}

func TestSubtractIntervals(t *testing.T) {
	window := Interval{540, 720} // 09:00-12:00

	tests := []struct {
		name    string
		blocked []Interval
		want    []Interval
	}{
		{
			name:    "no blocks",
			blocked: nil,
			want:    []Interval{{540, 720}},
		},
		{
			name:    "block in the middle",
			blocked: []Interval{{600, 630}},
			want:    []Interval{{540, 600}, {630, 720}},
		},
		{
			name:    "block covering the window",
			blocked: []Interval{{500, 800}},
			want:    []Interval{},
		},
		{
			name:    "block touching the open boundary",
			blocked: []Interval{{480, 540}},
			want:    []Interval{{540, 720}},
		},
		{
			name:    "block touching the close boundary",
			blocked: []Interval{{720, 780}},
			want:    []Interval{{540, 720}},
		},
		{
			name:    "block entirely outside",
			blocked: []Interval{{780, 840}},
			want:    []Interval{{540, 720}},
		},
		{
			name:    "block overlapping the start",
			blocked: []Interval{{500, 570}},
			want:    []Interval{{570, 720}},
		},
		{
			name:    "block overlapping the end",
			blocked: []Interval{{700, 760}},
			want:    []Interval{{540, 700}},
		},
		{
			name:    "multiple disjoint blocks",
			blocked: []Interval{{560, 580}, {600, 630}, {700, 710}},
			want:    []Interval{{540, 560}, {580, 600}, {630, 700}, {710, 720}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractIntervals(window, MergeIntervals(tt.blocked))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtractIntervals_InvalidWindow(t *testing.T) {
	assert.Nil(t, SubtractIntervals(Interval{720, 540}, nil))
}
