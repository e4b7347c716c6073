package daa

import "github.com/google/uuid"

// TrafficState is one aircraft's kinematic state at a single instant:
// position, velocity, and the stable identity used to key per-aircraft
// caches and coordination (spec.md §3). The aircraft's name remains the
// CriteriaCore tie-break key; the UUID is a process-stable handle that
// does not take part in any comparison. NewTrafficState mints a fresh
// one each time (daaio.ToTrafficState included); WithID carries one over.
type TrafficState struct {
	id       uuid.UUID
	Name     string
	Position Vect3
	Velocity Velocity
	Time     float64 // seconds since epoch, or scenario-relative
}

// NewTrafficState builds a TrafficState with a freshly minted identity.
func NewTrafficState(name string, pos Vect3, vel Velocity, t float64) TrafficState {
	return TrafficState{
		id:       uuid.New(),
		Name:     name,
		Position: pos,
		Velocity: vel,
		Time:     t,
	}
}

// ID returns the stable identity of this aircraft track.
func (t TrafficState) ID() uuid.UUID { return t.id }

// WithID returns a copy of t carrying the given identity, so that a later
// update can be recognized as the same aircraft.
func (t TrafficState) WithID(id uuid.UUID) TrafficState {
	t.id = id
	return t
}

// Linear returns the state obtained by flying the current velocity
// unchanged for dt seconds.
func (t TrafficState) Linear(dt float64) TrafficState {
	t.Position = t.Position.Linear(t.Velocity, dt)
	t.Time += dt
	return t
}

// RelativePosition returns the ownship-relative position of other, i.e.
// other - t.
func (t TrafficState) RelativePosition(other TrafficState) Vect3 {
	return other.Position.Sub(t.Position)
}

// RelativeVelocity returns the ownship-relative velocity of other.
func (t TrafficState) RelativeVelocity(other TrafficState) Vect3 {
	return Vect3{
		other.Velocity.X - t.Velocity.X,
		other.Velocity.Y - t.Velocity.Y,
		other.Velocity.Z - t.Velocity.Z,
	}
}
