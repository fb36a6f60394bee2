package container

import "testing"

func TestBufferSizing(t *testing.T) {
	b := NewBuffer(9)
	if got := len(b.Bytes()); got != 2 {
		t.Fatalf("9 bits should pack into 2 bytes, got %d", got)
	}
}

func TestBufferSetClearBit0(t *testing.T) {
	b := NewBuffer(9)
	b.Set(0)
	if b.Bytes()[0] != 0x01 {
		t.Fatalf("byte[0] = %#x, want 0x01", b.Bytes()[0])
	}
	b.Clear(0)
	if b.Bytes()[0] != 0x00 {
		t.Fatalf("byte[0] = %#x, want 0x00 after clear", b.Bytes()[0])
	}
}

func TestBufferSetClearBit8(t *testing.T) {
	b := NewBuffer(9)
	b.Set(8)
	if b.Bytes()[1] != 0x01 {
		t.Fatalf("byte[1] = %#x, want 0x01", b.Bytes()[1])
	}
	b.Clear(8)
	if b.Bytes()[1] != 0x00 {
		t.Fatalf("byte[1] = %#x, want 0x00 after clear", b.Bytes()[1])
	}
}

func TestBufferGetMatchesSet(t *testing.T) {
	b := NewBuffer(16)
	for _, i := range []int{0, 1, 7, 8, 15} {
		b.Set(i)
		if !b.Get(i) {
			t.Fatalf("bit %d should read set", i)
		}
		b.Clear(i)
		if b.Get(i) {
			t.Fatalf("bit %d should read clear", i)
		}
	}
}

func TestBufferOutOfRangePanics(t *testing.T) {
	b := NewBuffer(9)
	cases := []func(){
		func() { b.Get(9) },
		func() { b.Set(-1) },
		func() { b.Clear(100) },
	}
	for _, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic on out-of-range access")
				}
			}()
			fn()
		}()
	}
}
