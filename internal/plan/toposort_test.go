package plan

import "testing"

func TestTopoSort_Order(t *testing.T) {
	order, stuck, err := topoSort(4, func(i int) []int {
		switch i {
		case 0:
			return []int{3}
		case 1:
			return nil
		case 2:
			return []int{0}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if stuck != nil {
		t.Fatalf("expected nothing stuck, got %v", stuck)
	}

	exp := []int{1, 3, 0, 2}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	order, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("expected [2] ordered, got %v", order)
	}

	if len(stuck) != 2 || stuck[0] != 0 || stuck[1] != 1 {
		t.Fatalf("expected [0 1] stuck, got %v", stuck)
	}
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, _, err := topoSort(1, func(int) []int { return []int{5} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
