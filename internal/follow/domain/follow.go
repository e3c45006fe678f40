package domain

import "time"

// Follow is one directed edge of the follow graph
type Follow struct {
	FollowerID  string    `json:"follower_id" gorm:"primaryKey"`
	FollowingID string    `json:"following_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
}
