package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() {
		t.Errorf("new queue isn't empty")
	}
	if _, e := q.Pop(); e == nil {
		t.Errorf("pop on empty queue has no error")
	} else {
		var eq *EmptyQueueError
		if !errors.As(e, &eq) {
			t.Errorf("wrong error type %T", e)
		}
	}
	if v := q.Peek(); v != 0 {
		t.Errorf("peek on empty queue is %d, want 0", v)
	}
}

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7, 64} {
		q := MakeArrayQueue[int](initCap)
		var want []int
		for _i, _n := 0, 5000; _i < _n; _i++ {
			if rg.Intn(3) != 0 {
				a := rg.Int()
				q.Push(a)
				want = append(want, a)
			} else if len(want) > 0 {
				if v := q.Peek(); v != want[0] {
					t.Fatalf("peek %d, want %d", v, want[0])
				}
				v, e := q.Pop()
				if e != nil {
					t.Fatalf("unexpected error %v", e)
				}
				if v != want[0] {
					t.Fatalf("pop %d, want %d", v, want[0])
				}
				want = want[1:]
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("size is %d, want %d", q.Size(), len(want))
			}
		}
		q.Shrink()
		for len(want) > 0 {
			v, _ := q.Pop()
			if v != want[0] {
				t.Fatalf("pop after shrink %d, want %d", v, want[0])
			}
			want = want[1:]
		}
		if !q.Empty() {
			t.Errorf("queue isn't empty after popping everything")
		}
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i, _n := 0, 3; i < _n; i++ {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	for i := 3; i < 9; i++ {
		q.Push(i)
	}
	for i := 2; i < 9; i++ {
		if v, _ := q.Pop(); v != i {
			t.Fatalf("pop %d, want %d", v, i)
		}
	}
	q.Push(1)
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue isn't empty after Clear")
	}
}
