package cleopatra

import (
	"errors"
	"testing"
)

func TestHistogram1D(t *testing.T) {
	vals := []float64{0, 0, 1, 1, 2}
	s, err := NewStatistic(vals, Options{"bins": 2})
	if err != nil {
		t.Fatal(err)
	}
	fig, data, err := s.Histogram(nil)
	if err != nil {
		t.Fatal(err)
	}
	if fig.Bounds().Dx() != 500 {
		t.Errorf("expected 500px wide canvas at 5in default, got %d", fig.Bounds().Dx())
	}
	if len(data.Counts) != 1 {
		t.Fatalf("expected one series, got %d", len(data.Counts))
	}
	counts := data.Counts[0]
	if counts[0] != 2 || counts[1] != 3 {
		t.Errorf("expected counts [2 3], got %v", counts)
	}
	edges := data.Edges[0]
	if len(edges) != 3 || edges[0] != 0 || edges[2] != 2 {
		t.Errorf("expected edges [0 1 2], got %v", edges)
	}
}

func TestHistogramCountsSum(t *testing.T) {
	vals := make([]float64, 200)
	for i := range vals {
		vals[i] = float64(i % 37)
	}
	s, err := NewStatistic(vals, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, data, err := s.Histogram(nil)
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for _, c := range data.Counts[0] {
		sum += c
	}
	if sum != 200 {
		t.Errorf("expected all 200 samples binned, got %v", sum)
	}
	if len(data.Counts[0]) != 15 {
		t.Errorf("expected 15 default bins, got %d", len(data.Counts[0]))
	}
}

func TestHistogramColorCount(t *testing.T) {
	table := [][]float64{{1, 2, 3}, {4, 5, 6}}
	s, err := NewStatisticColumns(table, Options{"color": []string{"red"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Histogram(nil); !errors.Is(err, ErrColorCount) {
		t.Errorf("expected ErrColorCount, got %v", err)
	}
}

func TestHistogramEmptyColors(t *testing.T) {
	s, err := NewStatistic([]float64{1, 2, 3}, Options{"color": []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Histogram(nil); !errors.Is(err, ErrColorCount) {
		t.Errorf("expected ErrColorCount for an empty color list, got %v", err)
	}
}

func TestHistogramColumns(t *testing.T) {
	table := [][]float64{{1, 10}, {2, 20}, {3, 30}, {2, 20}}
	s, err := NewStatisticColumns(table, Options{"color": []string{"red", "green"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Values()); got != 2 {
		t.Fatalf("expected 2 series, got %d", got)
	}
	_, data, err := s.Histogram(Options{"bins": 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Counts) != 2 {
		t.Fatalf("expected 2 binned series, got %d", len(data.Counts))
	}
	for i, counts := range data.Counts {
		sum := 0.0
		for _, c := range counts {
			sum += c
		}
		if sum != 4 {
			t.Errorf("series %d: expected 4 samples binned, got %v", i, sum)
		}
	}
}

func TestHistogramUnknownOption(t *testing.T) {
	s, err := NewStatistic([]float64{1, 2, 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Histogram(Options{"bogus": 1}); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
}
