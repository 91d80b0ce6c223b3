package main

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ModeSet holds every value sharing the highest frequency in a sample,
// in ascending order, together with that frequency.
type ModeSet struct {
	Values    []int `json:"values" yaml:"values"`
	Frequency int   `json:"frequency" yaml:"frequency"`
}

// Empty reports whether the sample had no mode at all.
func (m ModeSet) Empty() bool {
	return len(m.Values) == 0
}

// Summary is everything a single report prints or serializes.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Mode   ModeSet `json:"mode" yaml:"mode"`
	Min    int     `json:"min" yaml:"min"`
	Max    int     `json:"max" yaml:"max"`
	Q1     int     `json:"q1" yaml:"q1"`
	Q3     int     `json:"q3" yaml:"q3"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// Mean returns the arithmetic average of sample, or 0 for an empty sample.
func Mean(sample []int) float64 {
	if len(sample) == 0 {
		return 0
	}
	var sum int64
	for _, v := range sample {
		sum += int64(v)
	}
	return float64(sum) / float64(len(sample))
}

// Median returns the middle value of the sorted sample. Even-length samples
// average the two middle values. An empty sample yields 0.
func Median(sample []int) float64 {
	if len(sample) == 0 {
		return 0
	}
	return medianSorted(sortedCopy(sample))
}

// Mode returns all values tied for the highest frequency.
func Mode(sample []int) ModeSet {
	if len(sample) == 0 {
		return ModeSet{}
	}
	return modeSorted(sortedCopy(sample))
}

// Summarize computes every statistic for sample from a single sorted copy.
func Summarize(sample []int) Summary {
	if len(sample) == 0 {
		return Summary{}
	}
	s := sortedCopy(sample)
	n := len(s)

	idx := func(f float64) int {
		i := int(math.Ceil(f) - 1)
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
		return i
	}

	_, stddev := stat.PopMeanStdDev(toFloats(s), nil)

	return Summary{
		Count:  n,
		Mean:   Mean(sample),
		Median: medianSorted(s),
		Mode:   modeSorted(s),
		Min:    s[0],
		Max:    s[n-1],
		Q1:     s[idx(float64(n)/4.0)],
		Q3:     s[idx(float64(3*n)/4.0)],
		StdDev: stddev,
	}
}

func sortedCopy(sample []int) []int {
	s := slices.Clone(sample)
	slices.Sort(s)
	return s
}

func medianSorted(s []int) float64 {
	n := len(s)
	if n%2 == 1 {
		return float64(s[n/2])
	}
	return (float64(s[n/2-1]) + float64(s[n/2])) / 2.0
}

// modeSorted walks runs of equal values; s must be sorted and non-empty.
func modeSorted(s []int) ModeSet {
	var modes []int
	best, run := 0, 0
	for i, v := range s {
		run++
		if i+1 < len(s) && s[i+1] == v {
			continue
		}
		switch {
		case run > best:
			best = run
			modes = append(modes[:0], v)
		case run == best:
			modes = append(modes, v)
		}
		run = 0
	}
	return ModeSet{Values: modes, Frequency: best}
}

func toFloats(s []int) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
