package determinism

import (
	"reflect"
	"testing"
)

// TestHashJSONIsOrderIndependent proves map insertion order does not change the hash
func TestHashJSONIsOrderIndependent(t *testing.T) {
	a := map[string]int{}
	b := map[string]int{}
	for i, k := range []string{"gsm", "width", "meters"} {
		a[k] = i
	}
	for i, k := range []string{"meters", "width", "gsm"} {
		b[k] = 2 - i
	}

	ha, err := HashJSON(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := HashJSON(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Errorf("hashes differ: %s vs %s", ha.Hex(), hb.Hex())
	}
	if len(ha.Hex()) != 64 {
		t.Errorf("Hex length = %d, want 64", len(ha.Hex()))
	}
	if len(ha.String()) != 19 {
		t.Errorf("String = %q", ha.String())
	}
}

func TestHashJSONRejectsUnencodable(t *testing.T) {
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("HashJSON(chan) succeeded")
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]bool{"pricing.currency": true, "http.addr": true, "logging.level": true}
	want := []string{"http.addr", "logging.level", "pricing.currency"}
	if got := SortedKeys(m); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys = %v, want %v", got, want)
	}

	var visited []string
	RangeMapSorted(m, func(k string, _ bool) bool {
		visited = append(visited, k)
		return len(visited) < 2
	})
	if !reflect.DeepEqual(visited, want[:2]) {
		t.Errorf("RangeMapSorted visited %v, want %v", visited, want[:2])
	}
}
