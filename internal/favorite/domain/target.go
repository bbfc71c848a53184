package domain

// Favorite target kinds. The set is closed: favorites reference either the
// people table or the planets table.
const (
	TypePeople = "people"
	TypePlanet = "planet"
)

// TargetRef identifies the row a favorite points at. Values are only built
// through PeopleRef, PlanetRef or ParseTargetRef, so a TargetRef in
// circulation always carries a valid kind; the flat (kind, id) pair is the
// storage representation.
type TargetRef struct {
	kind string
	id   uint
}

// PeopleRef builds a reference to a character row
func PeopleRef(id uint) TargetRef {
	return TargetRef{kind: TypePeople, id: id}
}

// PlanetRef builds a reference to a planet row
func PlanetRef(id uint) TargetRef {
	return TargetRef{kind: TypePlanet, id: id}
}

// ParseTargetRef validates a raw (kind, id) pair from the storage or
// transport boundary
func ParseTargetRef(kind string, id uint) (TargetRef, error) {
	switch kind {
	case TypePeople, TypePlanet:
		return TargetRef{kind: kind, id: id}, nil
	default:
		return TargetRef{}, ErrInvalidTargetType
	}
}

// Kind returns the target table tag ("people" or "planet")
func (t TargetRef) Kind() string {
	return t.kind
}

// ID returns the target row id
func (t TargetRef) ID() uint {
	return t.id
}
