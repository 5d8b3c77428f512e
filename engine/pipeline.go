package engine

import (
	"sort"
)

// Pipeline runs an ordered set of systems followed by the world's sync point
type Pipeline struct {
	name    string
	world   *World
	systems []System
}

// NewPipeline orders systems by priority; equal priorities keep argument order
func NewPipeline(name string, world *World, systems ...System) *Pipeline {
	sorted := make([]System, len(systems))
	copy(sorted, systems)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return &Pipeline{name: name, world: world, systems: sorted}
}

func (p *Pipeline) Name() string { return p.name }

// Systems returns the systems in run order
func (p *Pipeline) Systems() []System {
	out := make([]System, len(p.systems))
	copy(out, p.systems)
	return out
}

// Run updates every system once, then applies deferred mutations
func (p *Pipeline) Run() {
	for _, s := range p.systems {
		s.Update()
	}
	p.world.Maintain()
}

// Init resets every system
func (p *Pipeline) Init() {
	for _, s := range p.systems {
		s.Init()
	}
}
