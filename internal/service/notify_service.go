package service

import (
	"context"
	"encoding/json"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/pkg"
	"EventPulse/internal/repository/mysql"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.NotificationOutbox) error

// OutboxRelayer 定时捞pending行投递，失败计重试
// 投递失败永远不影响RSVP主流程
type OutboxRelayer struct {
	repo      outboxStore
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		maxRetry:  5,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		logrus.WithError(err).Error("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			logrus.WithError(err).WithField("outbox_id", ob.ID).Warn("notification send failed")
			_ = r.repo.MarkRetry(ctx, ob.ID, ob.Retry+1 >= r.maxRetry)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 投到通知topic，key按收件人做hash分区
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		envelope, err := json.Marshal(map[string]any{
			"id":         uuid.NewString(),
			"event_type": ob.EventType,
			"recipient":  ob.Recipient,
			"payload":    json.RawMessage(ob.Payload),
		})
		if err != nil {
			return err
		}
		return producer.Send(ctx, ob.Recipient, envelope)
	}
}

// EmailSender 用payload拼确认邮件发出去
func EmailSender(cfg pkg.SMTPConfig) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		var n RSVPNotification
		if err := json.Unmarshal([]byte(ob.Payload), &n); err != nil {
			return err
		}

		var subject, html string
		switch ob.EventType {
		case "rsvp_waitlisted":
			subject = "You're on the waitlist for " + n.EventTitle
			html = pkg.RSVPWaitlistedHTML(n.EventTitle)
		default:
			subject = "You're confirmed for " + n.EventTitle
			date, _ := time.Parse(time.RFC3339, n.EventDate)
			html = pkg.RSVPConfirmedHTML(n.EventTitle, date, n.Location)
		}
		return pkg.SendEmail(cfg, ob.Recipient, subject, html)
	}
}

// LogSender 开发环境默认投递：只打日志
func LogSender(ctx context.Context, ob *model.NotificationOutbox) error {
	logrus.WithFields(logrus.Fields{
		"event_type": ob.EventType,
		"recipient":  ob.Recipient,
	}).Info("[Email Mock] notification sent")
	return nil
}

// ChainSenders 依次尝试，第一个成功即停
func ChainSenders(senders ...Sender) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		var err error
		for _, s := range senders {
			if err = s(ctx, ob); err == nil {
				return nil
			}
		}
		return err
	}
}
