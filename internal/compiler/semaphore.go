package compiler

import "context"

type semaphore struct {
	x chan bool
}

func newSemaphore(v int) *semaphore {
	return &semaphore{
		x: make(chan bool, v),
	}
}

// Lock waits for a free slot or for ctx to end.
func (self *semaphore) Lock(ctx context.Context) error {
	select {
	case self.x <- false:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (self *semaphore) Unlock() {
	<-self.x
}
