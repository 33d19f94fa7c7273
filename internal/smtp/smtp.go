package smtp

import (
	"fmt"

	"github.com/JMURv/go-attractions/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const welcomeSubject = "Welcome to Attractions"

type EmailServer struct {
	enabled bool
	server  string
	port    int
	user    string
	pass    string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		enabled: conf.Email.Enabled,
		server:  conf.Email.Server,
		port:    conf.Email.Port,
		user:    conf.Email.User,
		pass:    conf.Email.Pass,
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

// SendWelcome is a no-op when email is disabled.
func (s *EmailServer) SendWelcome(toEmail, name string) error {
	if !s.enabled {
		return nil
	}

	m := s.GetMessageBase(welcomeSubject, toEmail)
	m.SetBody("text/plain", welcomeBody(name))
	return s.Send(m)
}

func welcomeBody(name string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nyour account is ready. Start exploring attractions around you.\n",
		name,
	)
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
