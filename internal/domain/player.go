package domain

// Foot is a player's preferred foot.
type Foot string

const (
	FootLeft   Foot = "Left"
	FootRight  Foot = "Right"
	FootEither Foot = "Either"
)

// PlayerRecord is one row of the ingested player table (internal/roster),
// validated and normalized. Name is the identity key within a single
// invocation; role_scores is dense over the 96-role closed set with missing
// cells already normalized to 0.0 by the parser.
type PlayerRecord struct {
	Name string
	Age  int
	Foot Foot

	// Abilities is indexed the same way Attributes() is ordered. A nil entry
	// means the cell was empty in the source table ("missing", not zero).
	Abilities [AttributeCountConst]*float64

	// DNA is an opaque, optional rating preserved without validation.
	DNA *float64

	// RoleScores is dense over the 96-role closed set; RoleScore(r) is the
	// preferred accessor since it tolerates roles absent from the map.
	RoleScores map[RoleId]float64
}

// AttributeCountConst mirrors AttributeCount() as a compile-time constant so
// PlayerRecord.Abilities can be a fixed-size array instead of a slice.
const AttributeCountConst = 47

// RoleScore returns p's score for r, defaulting to 0.0 for roles missing
// from RoleScores (per spec.md §4.4, empty cells read as 0.0).
func (p PlayerRecord) RoleScore(r RoleId) float64 {
	return p.RoleScores[r]
}
