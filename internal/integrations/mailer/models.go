package mailer

// Message письмо сотруднику
type Message struct {
	To      string
	Subject string
	Body    string
}

// Settings параметры SMTP подключения
type Settings struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
