package main

import (
	"context"

	"EventPulse/internal/config"
	"EventPulse/internal/model"
	"EventPulse/internal/pkg"
	"EventPulse/internal/repository/mysql"
	"EventPulse/internal/repository/redis"
	"EventPulse/internal/router"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("cannot load config: %s", err)
	}
	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("cannot parse config: %s", err)
	}

	// 容器里连接地址用环境变量覆盖配置文件
	cfg.MySQL.DSN = config.GetEnv("MYSQL_DSN", cfg.MySQL.DSN)
	cfg.Redis.Addr = config.GetEnv("REDIS_ADDR", cfg.Redis.Addr)

	db, err := mysql.InitDB(cfg.MySQL.DSN)
	if err != nil {
		logrus.Fatalf("mysql connect failed: %s", err)
	}
	defer func() { _ = mysql.Close(db) }()

	rdb, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logrus.Fatalf("redis connect failed: %s", err)
	}
	defer func() { _ = rdb.Close() }()

	// 自动建表（开发阶段 OK）
	if err := db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.RSVP{},
		&model.Feedback{},
		&model.NotificationOutbox{},
	); err != nil {
		logrus.Fatalf("migrate failed: %s", err)
	}

	// 通知投递链：kafka -> 邮件/日志
	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
	var senders []service.Sender
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logrus.Fatalf("kafka producer init failed: %s", err)
		}
		defer func() { _ = producer.Close() }()
		senders = append(senders, service.KafkaSender(producer))
	}
	if smtp.Enabled() {
		senders = append(senders, service.EmailSender(smtp))
	}
	senders = append(senders, service.LogSender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relayer := service.NewOutboxRelayer(db, service.ChainSenders(senders...))
	go relayer.Run(ctx)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := router.InitRouter(db, rdb)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logrus.Fatalf("server stopped: %s", err)
	}
}
