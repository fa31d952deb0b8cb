package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError if there's nothing to pop.
	Pop() (T, error)
	//Peek the oldest item without removing it. Returns the zero value of T when empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
