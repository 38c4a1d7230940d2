package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

// Enabled 没配SMTP时通知走日志投递
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port > 0
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// RSVPConfirmedHTML RSVP确认邮件正文
func RSVPConfirmedHTML(eventTitle string, eventDate time.Time, location string) string {
	return fmt.Sprintf(`<p>Hi there!</p><p>You're all set for <b>%s</b>.</p><p>Date: %s<br>Location: %s</p><p>We'll send you a reminder when check-in opens.</p><p>EventPulse Team</p>`,
		eventTitle, eventDate.Format("2006-01-02 15:04"), location)
}

// RSVPWaitlistedHTML 满员进等待名单的通知正文
func RSVPWaitlistedHTML(eventTitle string) string {
	return fmt.Sprintf(`<p>Hi there!</p><p><b>%s</b> is currently full, so you've been added to the waitlist.</p><p>We'll let you know if a spot opens up.</p><p>EventPulse Team</p>`, eventTitle)
}
