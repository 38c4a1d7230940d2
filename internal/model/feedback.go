package model

import "time"

type Reaction string

const (
	ReactionThumbsUp   Reaction = "THUMBS_UP"
	ReactionThumbsDown Reaction = "THUMBS_DOWN"
	ReactionHeart      Reaction = "HEART"
	ReactionSurprise   Reaction = "SURPRISE"
)

// Reactions 固定枚举，统计时按这个顺序输出
var Reactions = []Reaction{ReactionThumbsUp, ReactionThumbsDown, ReactionHeart, ReactionSurprise}

func (r Reaction) Valid() bool {
	switch r {
	case ReactionThumbsUp, ReactionThumbsDown, ReactionHeart, ReactionSurprise:
		return true
	}
	return false
}

// Feedback 每个用户对每场活动只能提交一条，唯一键兜底
type Feedback struct {
	ID        uint64   `gorm:"primaryKey"`
	EventID   uint64   `gorm:"not null;index;uniqueIndex:uk_feedback_event_user"`
	UserID    uint64   `gorm:"not null;index;uniqueIndex:uk_feedback_event_user"`
	Comment   string   `gorm:"type:text;not null"`
	Reaction  Reaction `gorm:"size:16"`
	Emoji     string   `gorm:"size:16"`
	IsPinned  bool     `gorm:"not null;default:false"`
	IsFlagged bool     `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Feedback) TableName() string { return "feedback" }
