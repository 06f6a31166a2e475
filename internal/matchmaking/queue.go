package matchmaking

// Queue is a FIFO of clients waiting for an opponent. A client is queued at most once.
type Queue struct {
	waiting []int64
	queued  map[int64]struct{}
}

func NewQueue() *Queue {
	return &Queue{
		queued: make(map[int64]struct{}),
	}
}

// Enqueue appends id and pops the two longest waiting clients once at least two are queued.
func (that *Queue) Enqueue(id int64) (first, second int64, paired bool) {
	if _, ok := that.queued[id]; !ok {
		that.waiting = append(that.waiting, id)
		that.queued[id] = struct{}{}
	}

	if len(that.waiting) < 2 {
		return 0, 0, false
	}

	first, second = that.waiting[0], that.waiting[1]
	that.waiting = that.waiting[2:]
	delete(that.queued, first)
	delete(that.queued, second)

	return first, second, true
}

// Remove deletes id from the queue and reports whether it was queued.
func (that *Queue) Remove(id int64) bool {
	if _, ok := that.queued[id]; !ok {
		return false
	}

	delete(that.queued, id)

	for i, waiting := range that.waiting {
		if waiting == id {
			that.waiting = append(that.waiting[:i], that.waiting[i+1:]...)
			break
		}
	}

	return true
}

func (that *Queue) Len() int {
	return len(that.waiting)
}
