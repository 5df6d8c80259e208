package queue

// Queue represents a basic queue.
type Queue[T any] interface {
	// Enqueue adds item to the back of the queue and reports whether it fit.
	Enqueue(item T) bool
	Size() int
	// ReadAll removes and returns every pending item in order.
	ReadAll() []T
	Clear()
}
