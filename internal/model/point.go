package model

// Point is a vector stored in a collection. ID is either an unsigned integer
// in decimal form or a UUID. Payload values are scalars or lists of scalars.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}

// Dim returns the number of vector components.
func (p Point) Dim() int {
	return len(p.Vector)
}

// ScoredPoint is a search hit ranked by similarity to the query vector.
type ScoredPoint struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}
