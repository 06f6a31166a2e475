package matchmaking

// Relations stores every pairing as two directed entries.
type Relations struct {
	opponents map[int64]int64
}

func NewRelations() *Relations {
	return &Relations{
		opponents: make(map[int64]int64),
	}
}

func (that *Relations) Pair(a, b int64) {
	that.opponents[a] = b
	that.opponents[b] = a
}

func (that *Relations) Lookup(id int64) (int64, bool) {
	opponent, ok := that.opponents[id]
	return opponent, ok
}

// Unpair removes both directions of the pairing and returns the opponent. Only the first call for a pair finds it.
func (that *Relations) Unpair(id int64) (int64, bool) {
	opponent, ok := that.opponents[id]
	if !ok {
		return 0, false
	}

	delete(that.opponents, id)
	if back, ok := that.opponents[opponent]; ok && back == id {
		delete(that.opponents, opponent)
	}

	return opponent, true
}

// Len returns the number of pairs.
func (that *Relations) Len() int {
	return len(that.opponents) / 2
}
