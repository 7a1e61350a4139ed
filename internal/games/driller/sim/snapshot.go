package sim

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Frame    int
	Depth    int
	Stage    int
	Over     bool
	Clear    bool
	Outcome  Outcome
	PlayerX  int
	PlayerY  int
	State    PlayerState
	Air      int
	Camera   int
	GridHash uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:    g.frame,
		Depth:    g.depth,
		Stage:    g.stage,
		Over:     g.over,
		Clear:    g.clear,
		Outcome:  g.outcome,
		PlayerX:  g.player.Pos.X,
		PlayerY:  g.player.Pos.Y,
		State:    g.player.State,
		Air:      g.player.Air,
		Camera:   g.camera,
		GridHash: g.grid.Hash(),
	}
}

// Hash fingerprints the persistent part of every cell: kind, color,
// durability and gravity phase. Derived fields are left out.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for i := range g.cells {
		c := &g.cells[i]
		buf[0] = byte(c.Kind)
		buf[1] = byte(c.Color)
		binary.LittleEndian.PutUint32(buf[2:6], uint32(c.Durability))
		buf[6] = byte(c.Phase.Kind)
		binary.LittleEndian.PutUint16(buf[7:9], uint16(c.Phase.N))
		h.Write(buf[:])
	}
	return h.Sum64()
}
