package models

import (
	"time"
)

// PostType categorizes feed posts for rendering
type PostType string

const (
	PostTypeGameResult  PostType = "game_result"
	PostTypeInjury      PostType = "injury"
	PostTypeRosterMove  PostType = "roster_move"
	PostTypeAchievement PostType = "achievement"
	PostTypeRetirement  PostType = "retirement"
	PostTypeSuspension  PostType = "suspension"
	PostTypeHallOfFame  PostType = "hall_of_fame"
	PostTypeOther       PostType = "other"
)

// FeedPost is one entry in the league's news feed
type FeedPost struct {
	// ID is the unique identifier for the post
	ID string

	// Analyst is the @handle the post is attributed to
	Analyst string

	// Content is the rendered post text
	Content string

	// Timestamp is when the post was published, in league time
	Timestamp time.Time

	// Type categorizes the post
	Type PostType

	// IsAchievement marks posts that celebrate an unlock
	IsAchievement bool
}
