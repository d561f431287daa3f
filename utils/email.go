package utils

import (
	"bytes"
	"html/template"
	"log"
	"restaurant_pos/config"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SessionReportData feeds the cash count email template.
type SessionReportData struct {
	SessionId     uint
	OpenedAt      string
	ClosedAt      string
	OpenedBy      string
	OpeningFloat  float64
	CashSales     float64
	CardSales     float64
	YapeSales     float64
	TotalSales    float64
	TotalIngresos float64
	TotalEgresos  float64
	ExpectedCash  float64
	CountedCash   float64
	Variance      float64
	OrderCount    int64
}

type LowStockItem struct {
	Name  string
	Stock int
}

type LowStockData struct {
	Date  string
	Items []LowStockItem
}

func sendHTMLEmail(to, subject, tmplPath string, data any) {
	go func() { // async so the response is not delayed by SMTP
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		portStr := config.Config("SMTP_PORT")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send email: %v", err)
		}
	}()
}

// SendSessionReportEmail mails the end-of-day cash count to the owner.
func SendSessionReportEmail(to string, data SessionReportData) {
	sendHTMLEmail(to, "Arqueo de caja #"+strconv.Itoa(int(data.SessionId)), "templates/session_report.html", data)
}

// SendLowStockEmail mails the nightly list of products running out.
func SendLowStockEmail(to string, data LowStockData) {
	sendHTMLEmail(to, "Productos con stock bajo - "+data.Date, "templates/low_stock.html", data)
}
