package scoring

import "testing"

func TestPredictLevel(t *testing.T) {
	levels := []Level{
		{Name: "Baik", Threshold: 250},
		{Name: "Unggul", Threshold: 350},
		{Name: "BaikSekali", Threshold: 300},
	}
	tests := []struct {
		total float64
		want  string
	}{
		{400, "Unggul"},
		{350, "Unggul"},
		{349.99, "BaikSekali"},
		{312, "BaikSekali"},
		{300, "BaikSekali"},
		{250, "Baik"},
		{249.99, NotAccredited},
		{0, NotAccredited},
		{-10, NotAccredited},
	}
	for _, tt := range tests {
		if got := PredictLevel(tt.total, levels, ""); got != tt.want {
			t.Errorf("total %.2f: expected %s, got %s", tt.total, tt.want, got)
		}
	}
}

func TestPredictLevelCustomFallbackAndEmptyTable(t *testing.T) {
	if got := PredictLevel(999, nil, ""); got != NotAccredited {
		t.Fatalf("empty table must fall back, got %s", got)
	}
	if got := PredictLevel(10, []Level{{Name: "A", Threshold: 20}}, "Belum Memenuhi"); got != "Belum Memenuhi" {
		t.Fatalf("expected custom fallback, got %s", got)
	}
}

func TestPredictLevelEqualThresholdsUseDeclarationOrder(t *testing.T) {
	levels := []Level{
		{Name: "Peringkat B", Threshold: 200},
		{Name: "Baik Sekali", Threshold: 300},
		{Name: "Peringkat A", Threshold: 300},
	}
	for i := 0; i < 20; i++ {
		if got := PredictLevel(310, levels, ""); got != "Baik Sekali" {
			t.Fatalf("expected first declared level on tie, got %s", got)
		}
	}
}

func TestPredictLevelMonotonic(t *testing.T) {
	levels := []Level{
		{Name: "Unggul", Threshold: 361},
		{Name: "Baik Sekali", Threshold: 301},
		{Name: "Baik", Threshold: 200},
	}
	table := NewLevelTable(levels, "")
	rank := map[string]int{NotAccredited: 0, "Baik": 1, "Baik Sekali": 2, "Unggul": 3}

	prev := -1
	for total := 0.0; total <= 400; total += 0.5 {
		r := rank[table.Predict(total)]
		if r < prev {
			t.Fatalf("level decreased at total %.1f", total)
		}
		prev = r
	}
}

func TestNewLevelTableDoesNotMutateInput(t *testing.T) {
	levels := []Level{{Name: "low", Threshold: 1}, {Name: "high", Threshold: 9}}
	table := NewLevelTable(levels, "")
	if levels[0].Name != "low" {
		t.Fatalf("input slice reordered")
	}
	if got := table.Levels(); got[0].Name != "high" {
		t.Fatalf("expected descending order, got %+v", got)
	}
}
