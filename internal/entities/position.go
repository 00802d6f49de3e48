package entities

// Position is a point in a world
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceSquared returns the squared euclidean distance to other
func (p Position) DistanceSquared(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Within reports whether other lies inside radius of p, boundary included
func (p Position) Within(other Position, radius float64) bool {
	return p.DistanceSquared(other) <= radius*radius
}
