package core

// Entity is a generation-checked handle: low 32 bits are the slot index,
// high 32 bits the generation. Generation 0 is never issued, so the zero
// Entity is never alive
type Entity uint64

// NewEntity packs a slot index and generation
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation at the time the handle was issued
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
