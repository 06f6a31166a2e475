package matchmaking

type Rooms struct {
	members map[string]map[int64]struct{}
}

func NewRooms() *Rooms {
	return &Rooms{
		members: make(map[string]map[int64]struct{}),
	}
}

func (that *Rooms) Join(roomID string, id int64) {
	room, ok := that.members[roomID]
	if !ok {
		room = make(map[int64]struct{})
		that.members[roomID] = room
	}

	room[id] = struct{}{}
}

// Leave drops id from the room and forgets the room once it is empty.
func (that *Rooms) Leave(roomID string, id int64) {
	room, ok := that.members[roomID]
	if !ok {
		return
	}

	delete(room, id)
	if len(room) == 0 {
		delete(that.members, roomID)
	}
}

func (that *Rooms) Counts() map[string]int {
	counts := make(map[string]int, len(that.members))
	for roomID, room := range that.members {
		counts[roomID] = len(room)
	}

	return counts
}
