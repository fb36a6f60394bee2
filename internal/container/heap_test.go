package container

import "testing"

func TestHeapPopsInAscendingOrder(t *testing.T) {
	h := NewHeap[int](5, func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	var out []int
	for !h.Empty() {
		out = append(out, h.Pop())
	}
	want := []int{1, 2, 3, 4, 5}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("pop order = %v, want %v", out, want)
		}
	}
}

func TestHeapTopDoesNotRemove(t *testing.T) {
	h := NewHeap[int](2, func(a, b int) bool { return a < b })
	h.Push(9)
	h.Push(1)
	if h.Top() != 1 {
		t.Fatalf("Top() = %d, want 1", h.Top())
	}
	if h.Len() != 2 {
		t.Fatalf("Top() should not remove, Len() = %d", h.Len())
	}
}

func TestHeapPushPastCapacityPanics(t *testing.T) {
	h := NewHeap[int](1, func(a, b int) bool { return a < b })
	h.Push(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic pushing past capacity")
		}
	}()
	h.Push(2)
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[string]()
	q.PushBack("a")
	q.PushBack("b")
	q.PushBack("c")
	var out []string
	for !q.Empty() {
		out = append(out, q.PopFront())
	}
	want := []string{"a", "b", "c"}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("pop order = %v, want %v", out, want)
		}
	}
}
