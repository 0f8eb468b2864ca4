package mail

type ConfirmationEmailData struct {
	Name          string
	PortfolioName string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
