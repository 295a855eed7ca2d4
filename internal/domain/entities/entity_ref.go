package entities

// EntityKind identifies which directory an entity reference points into.
type EntityKind string

const (
	EntityKindTeamMember  EntityKind = "team_member"
	EntityKindPeer        EntityKind = "peer"
	EntityKindStakeholder EntityKind = "stakeholder"
	EntityKindProject     EntityKind = "project"
)

// Valid reports whether the kind is one of the four known kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindTeamMember, EntityKindPeer, EntityKindStakeholder, EntityKindProject:
		return true
	}
	return false
}

// IsPerson reports whether the kind can own a one-on-one meeting record.
func (k EntityKind) IsPerson() bool {
	return k == EntityKindTeamMember || k == EntityKindPeer
}

// EntityRef is a tagged reference to a team member, peer, stakeholder or
// project. The zero value (empty ID) means "no entity".
type EntityRef struct {
	Kind EntityKind `json:"type"`
	ID   string     `json:"id"`
}

// IsZero reports whether the reference points at nothing.
func (r EntityRef) IsZero() bool {
	return r.ID == ""
}
