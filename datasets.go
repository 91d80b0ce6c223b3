package main

// Dataset is a named, compiled-in sample.
type Dataset struct {
	Name   string
	Sample []int
}

var demoDatasets = []Dataset{
	{Name: "basic", Sample: []int{1, 2, 3, 4, 5}},
	{Name: "duplicates", Sample: []int{1, 2, 2, 3, 3, 3, 4, 4, 5}},
	{Name: "even-length", Sample: []int{10, 20, 30, 40}},
	{Name: "single-mode", Sample: []int{5, 5, 5, 2, 2, 1}},
}

var extendedDatasets = []Dataset{
	{Name: "multiple-modes", Sample: []int{1, 1, 2, 2, 3, 3}},
	{Name: "trailing-mode", Sample: []int{7, 8, 9, 9, 10}},
}

// datasets returns the samples to report on, in print order.
func datasets(extended bool) []Dataset {
	out := append([]Dataset(nil), demoDatasets...)
	if extended {
		out = append(out, extendedDatasets...)
	}
	return out
}
