package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strings"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"
	"EventPulse/internal/repository/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	eventRepo *mysql.EventRepository
	rsvpRepo  *mysql.RSVPRepository
	fbRepo    *mysql.FeedbackRepository
	cache     *redis.AnalyticsCacheRepository
}

func NewAnalyticsService(db *gorm.DB, rdb *goredis.Client) *AnalyticsService {
	return &AnalyticsService{
		eventRepo: &mysql.EventRepository{DB: db},
		rsvpRepo:  &mysql.RSVPRepository{DB: db},
		fbRepo:    &mysql.FeedbackRepository{DB: db},
		cache:     redis.NewAnalyticsCacheRepository(rdb),
	}
}

type RSVPStats struct {
	Total     int64 `json:"total"`
	CheckedIn int64 `json:"checked_in"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type Analytics struct {
	RSVPStats       RSVPStats                `json:"rsvp_stats"`
	ReactionCounts  map[model.Reaction]int64 `json:"reaction_counts"`
	TopEmojis       []EmojiCount             `json:"top_emojis"`
	WordFrequencies map[string]int           `json:"word_frequencies"`
}

const TopEmojiLimit = 5

// 原型里写死的英文停用词表
var stopWords = map[string]struct{}{
	"the": {}, "be": {}, "to": {}, "of": {}, "and": {}, "a": {}, "in": {},
	"that": {}, "have": {}, "i": {}, "it": {}, "for": {}, "not": {}, "on": {},
	"with": {}, "he": {}, "as": {}, "you": {}, "do": {}, "at": {},
}

var nonWord = regexp.MustCompile(`\W+`)

// WordFrequencies 小写分词，丢掉停用词和长度<=2的token，不做词干化
func WordFrequencies(comments []string) map[string]int {
	freq := make(map[string]int)
	for _, comment := range comments {
		for _, word := range nonWord.Split(strings.ToLower(comment), -1) {
			if len(word) <= 2 {
				continue
			}
			if _, ok := stopWords[word]; ok {
				continue
			}
			freq[word]++
		}
	}
	return freq
}

// TopEmojis 按出现次数降序取前limit个，并列保持首次出现的先后
func TopEmojis(emojis []string, limit int) []EmojiCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range emojis {
		if e == "" {
			continue
		}
		if counts[e] == 0 {
			order = append(order, e)
		}
		counts[e]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	out := make([]EmojiCount, 0, len(order))
	for _, e := range order {
		out = append(out, EmojiCount{Emoji: e, Count: counts[e]})
	}
	return out
}

// ReactionCounts 固定枚举全量输出，没出现的计0
func ReactionCounts(rows []model.Feedback) map[model.Reaction]int64 {
	counts := make(map[model.Reaction]int64, len(model.Reactions))
	for _, r := range model.Reactions {
		counts[r] = 0
	}
	for _, row := range rows {
		if row.Reaction.Valid() {
			counts[row.Reaction]++
		}
	}
	return counts
}

// EventAnalytics 不落任何派生状态，缓存只是短TTL的整包快照
func (s *AnalyticsService) EventAnalytics(ctx context.Context, eventID uint64) (*Analytics, error) {
	if _, err := s.eventRepo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if payload, ok, err := s.cache.Get(ctx, eventID); err == nil && ok {
		var cached Analytics
		if json.Unmarshal(payload, &cached) == nil {
			return &cached, nil
		}
	}

	total, checkedIn, err := s.rsvpRepo.CountByEvent(eventID)
	if err != nil {
		return nil, err
	}

	comments, err := s.fbRepo.ListComments(eventID)
	if err != nil {
		return nil, err
	}

	rows, err := s.fbRepo.ListReactionsEmojis(eventID)
	if err != nil {
		return nil, err
	}
	emojis := make([]string, 0, len(rows))
	for _, row := range rows {
		emojis = append(emojis, row.Emoji)
	}

	result := &Analytics{
		RSVPStats:       RSVPStats{Total: total, CheckedIn: checkedIn},
		ReactionCounts:  ReactionCounts(rows),
		TopEmojis:       TopEmojis(emojis, TopEmojiLimit),
		WordFrequencies: WordFrequencies(comments),
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, eventID, payload); err != nil {
			logrus.WithError(err).Warn("analytics cache set failed")
		}
	}
	return result, nil
}
