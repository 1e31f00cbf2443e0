package io

// Queue implements a circular buffer of pending input bytes.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
type Queue struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Input = (*Queue)(nil)

// NewQueue creates an empty queue holding up to capacity bytes.
func NewQueue(capacity int) (queue *Queue) {
	queue = &Queue{Capacity: capacity}
	queue.Rewind()

	return
}

// Rewind resets the queue to empty, resetting indices and
// reinitializing the data buffer.
func (queue *Queue) Rewind() {
	queue.ReadIndex = 0
	queue.WriteIndex = 0
	queue.Size = 0
	queue.Data = make([]byte, queue.Capacity)
}

// Poll returns the oldest pending byte.
// The buffer wraps around at the capacity boundary.
func (queue *Queue) Poll() (value byte, ok bool) {
	if queue.Size == 0 {
		return
	}

	value = queue.Data[queue.ReadIndex]
	ok = true

	queue.ReadIndex++
	if queue.ReadIndex == queue.Capacity {
		queue.ReadIndex = 0
	}
	queue.Size--

	return
}

// Send appends a byte at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (queue *Queue) Send(value byte) (err error) {
	if queue.Size >= queue.Capacity {
		err = ErrChannelFull
		return
	}

	queue.Data[queue.WriteIndex] = value

	queue.WriteIndex++
	if queue.WriteIndex == queue.Capacity {
		queue.WriteIndex = 0
	}
	queue.Size++

	return
}

// Write appends p to the queue, stopping with ErrChannelFull when full.
func (queue *Queue) Write(p []byte) (n int, err error) {
	for _, value := range p {
		err = queue.Send(value)
		if err != nil {
			return
		}
		n++
	}

	return
}
