package office

import (
	"math/rand"
	"slices"
)

// WorkstationID is a stable index into the workstation arena.
type WorkstationID int

// Workstation is a desk an employee works at.
type Workstation struct {
	ID WorkstationID
	// Seat is where the employee sits; Arrival is the step just before it.
	Seat     Vec2
	Arrival  Vec2
	Rotation float64
	Broken   bool
}

// Pool partitions a fixed set of workstations into available and assigned.
type Pool struct {
	stations  []Workstation
	available []WorkstationID
}

// NewPool creates a pool where every workstation is available.
// IDs are reassigned to match arena positions.
func NewPool(stations []Workstation) *Pool {
	pool := &Pool{
		stations:  make([]Workstation, len(stations)),
		available: make([]WorkstationID, 0, len(stations)),
	}
	for i, station := range stations {
		station.ID = WorkstationID(i)
		pool.stations[i] = station
		pool.available = append(pool.available, station.ID)
	}
	return pool
}

// Acquire removes a uniformly chosen workstation from the available set.
func (pool *Pool) Acquire(rng *rand.Rand) (WorkstationID, bool) {
	if len(pool.available) == 0 {
		return 0, false
	}
	index := rng.Intn(len(pool.available))
	id := pool.available[index]
	last := len(pool.available) - 1
	pool.available[index] = pool.available[last]
	pool.available = pool.available[:last]
	return id, true
}

// Release returns a workstation to the available set. Releasing an
// unknown or already available workstation does nothing.
func (pool *Pool) Release(id WorkstationID) bool {
	if !pool.valid(id) || pool.IsAvailable(id) {
		return false
	}
	pool.available = append(pool.available, id)
	return true
}

// IsAvailable reports whether id is in the available set.
func (pool *Pool) IsAvailable(id WorkstationID) bool {
	return slices.Contains(pool.available, id)
}

// Get returns a copy of one workstation.
func (pool *Pool) Get(id WorkstationID) (Workstation, bool) {
	if !pool.valid(id) {
		return Workstation{}, false
	}
	return pool.stations[id], true
}

// Len returns the size of the arena.
func (pool *Pool) Len() int {
	return len(pool.stations)
}

// AvailableCount returns how many workstations can be acquired.
func (pool *Pool) AvailableCount() int {
	return len(pool.available)
}

// Available returns the available ids in ascending order.
func (pool *Pool) Available() []WorkstationID {
	ids := slices.Clone(pool.available)
	slices.Sort(ids)
	return ids
}

// Assigned returns the ids not in the available set, ascending.
func (pool *Pool) Assigned() []WorkstationID {
	ids := make([]WorkstationID, 0, len(pool.stations)-len(pool.available))
	for _, station := range pool.stations {
		if !pool.IsAvailable(station.ID) {
			ids = append(ids, station.ID)
		}
	}
	return ids
}

// All returns a copy of every workstation.
func (pool *Pool) All() []Workstation {
	return slices.Clone(pool.stations)
}

func (pool *Pool) station(id WorkstationID) *Workstation {
	if !pool.valid(id) {
		return nil
	}
	return &pool.stations[id]
}

func (pool *Pool) valid(id WorkstationID) bool {
	return id >= 0 && int(id) < len(pool.stations)
}
