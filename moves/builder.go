package moves

// Builder assembles a Set move by move.
//
//	set, err := moves.NewBuilder("standard").
//		Move(moves.Light1).Damage(5).Timing(0.3, 0.18).Next(moves.Light2).
//		Move(moves.Light2).Damage(6).Timing(0.32, 0.2).
//		Build()
type Builder struct {
	name  string
	order []MoveID
	moves map[MoveID]*Move
}

func NewBuilder(name string) *Builder {
	return &Builder{name: name, moves: make(map[MoveID]*Move)}
}

// Move starts (or reopens) the definition of id.
func (b *Builder) Move(id MoveID) *MoveBuilder {
	m, ok := b.moves[id]
	if !ok {
		m = &Move{ID: id}
		b.moves[id] = m
		b.order = append(b.order, id)
	}
	return &MoveBuilder{b: b, m: m}
}

// Build validates the collected moves and returns an immutable Set.
func (b *Builder) Build() (*Set, error) {
	s := &Set{Name: b.name, moves: make(map[MoveID]Move, len(b.moves))}
	for _, id := range b.order {
		m := *b.moves[id]
		m.Next = append([]MoveID(nil), m.Next...)
		s.moves[id] = m
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MoveBuilder sets fields on one move. Every method returns the receiver so
// calls chain; Move and Build hand control back to the parent builder.
type MoveBuilder struct {
	b *Builder
	m *Move
}

func (mb *MoveBuilder) Damage(d float64) *MoveBuilder {
	mb.m.Damage = d
	return mb
}

// Knockback sets base force, growth per 100 combo damage, and launch angle in degrees.
func (mb *MoveBuilder) Knockback(base, growth, angle float64) *MoveBuilder {
	mb.m.Knockback = Knockback{Base: base, Growth: growth, Angle: angle}
	return mb
}

func (mb *MoveBuilder) Hitstun(sec float64) *MoveBuilder {
	mb.m.Hitstun = sec
	return mb
}

func (mb *MoveBuilder) Hitlag(sec float64) *MoveBuilder {
	mb.m.Hitlag = sec
	return mb
}

// Timing sets total duration and the cancel window offset.
func (mb *MoveBuilder) Timing(duration, cancelWindow float64) *MoveBuilder {
	mb.m.Duration = duration
	mb.m.CancelWindow = cancelWindow
	return mb
}

func (mb *MoveBuilder) Lift(v float64) *MoveBuilder {
	mb.m.Lift = v
	return mb
}

// Next appends legal follow-up moves.
func (mb *MoveBuilder) Next(ids ...MoveID) *MoveBuilder {
	mb.m.Next = append(mb.m.Next, ids...)
	return mb
}

func (mb *MoveBuilder) Move(id MoveID) *MoveBuilder {
	return mb.b.Move(id)
}

func (mb *MoveBuilder) Build() (*Set, error) {
	return mb.b.Build()
}
