package huffman

import "testing"

func TestCountFrequencies(t *testing.T) {
	counts := CountFrequencies([]string{"aab", "b"})
	if counts['a'] != 2 {
		t.Fatalf("count['a'] = %d, want 2", counts['a'])
	}
	if counts['b'] != 2 {
		t.Fatalf("count['b'] = %d, want 2", counts['b'])
	}
	if counts['c'] != 0 {
		t.Fatalf("count['c'] = %d, want 0", counts['c'])
	}
}

func TestBuildFrequencyTableAscendingBySymbol(t *testing.T) {
	counts := CountFrequencies([]string{"dcba"})
	table := BuildFrequencyTable(counts)
	if len(table) != 4 {
		t.Fatalf("len(table) = %d, want 4", len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i-1].Symbol >= table[i].Symbol {
			t.Fatalf("table not ascending by symbol: %v", table)
		}
	}
}

func TestBuildFrequencyTableOmitsZeroCounts(t *testing.T) {
	var counts [256]uint64
	counts['x'] = 5
	table := BuildFrequencyTable(counts)
	if len(table) != 1 || table[0].Symbol != 'x' || table[0].Count != 5 {
		t.Fatalf("table = %v, want single entry {x,5}", table)
	}
}

func TestBuildFrequencyTableEmptyCorpus(t *testing.T) {
	counts := CountFrequencies(nil)
	table := BuildFrequencyTable(counts)
	if len(table) != 0 {
		t.Fatalf("expected empty table for empty corpus, got %v", table)
	}
}
