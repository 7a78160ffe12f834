package world

// Group is one owning collection of entities. An entity is in at most one
// group; it leaves only by reporting itself dead.
type Group struct {
	name    string
	members []Entity
}

// NewGroup creates an empty named group.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// Add appends an entity to the group.
func (g *Group) Add(e Entity) {
	g.members = append(g.members, e)
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Members returns the live slice of members. Callers must not modify it.
func (g *Group) Members() []Entity {
	return g.members
}

// Each calls fn for every member in insertion order.
func (g *Group) Each(fn func(Entity)) {
	for _, e := range g.members {
		fn(e)
	}
}

// Contains reports whether e is a member.
func (g *Group) Contains(e Entity) bool {
	for _, m := range g.members {
		if m == e {
			return true
		}
	}
	return false
}

// update ticks every member present at the start of the call, then drops
// members that are no longer alive. Members added during the tick are kept
// but not ticked until the next call.
func (g *Group) update(w *World) {
	n := len(g.members)
	for i := 0; i < n; i++ {
		g.members[i].Tick(w)
	}
	g.prune()
}

func (g *Group) prune() {
	live := g.members[:0]
	for _, e := range g.members {
		if e.Alive() {
			live = append(live, e)
		}
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(live); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = live
}

func (g *Group) shift(dx int) {
	for _, e := range g.members {
		e.Rect().X += dx
	}
}
