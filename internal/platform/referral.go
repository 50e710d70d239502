package platform

import "time"

const (
	SideLeft  = "left"
	SideRight = "right"
)

// Referral is an edge of the binary referral tree. The side is assigned by
// the server at creation time and never changes.
type Referral struct {
	Id        string    `json:"_id"`
	Side      string    `json:"side"` // "left" or "right"
	Referred  Referred  `json:"referred"`
	CreatedAt time.Time `json:"createdAt"`
}

type Referred struct {
	Username string `json:"username"`
}

type TeamCounts struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}
