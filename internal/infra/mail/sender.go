package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

var portfolioNames = map[string]string{
	"starter": "Carteira Starter",
	"trader":  "Carteira Trader",
	"pro":     "Carteira Pro",
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *EmailSender) SendConfirmation(to, name, portfolioType string) error {
	portfolioName := portfolioNames[portfolioType]
	if portfolioName == "" {
		portfolioName = "Quant Broker"
	}

	data := ConfirmationEmailData{
		Name:          name,
		PortfolioName: portfolioName,
	}

	tmplPath := filepath.Join("templates", "confirmation.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@quantbroker.com.br")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Recebemos seu cadastro, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
