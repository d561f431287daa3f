package helper

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"restaurant_pos/config"
	"restaurant_pos/model"
	"restaurant_pos/utils"
	"time"
)

// ComandaData feeds the kitchen ticket template.
type ComandaData struct {
	PublicCode string
	TableName  string
	Waiter     string
	Time       string
	Items      []model.OrderItem
	Note       string
}

// PreCuentaData feeds the pre-bill ticket shown to the guest.
type PreCuentaData struct {
	PublicCode string
	TableName  string
	Time       string
	Items      []model.OrderItem
	Total      float64
	QRBase64   string
}

// ArqueoData feeds the printed cash count slip.
type ArqueoData struct {
	SessionId     uint
	OpenedAt      string
	ClosedAt      string
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
}

func renderTicket(tmplPath string, data any) (string, error) {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendToPrinter posts rendered HTML to the local USB print bridge.
// The bridge runs next to the browser on the cashier machine.
func SendToPrinter(htmlContent string) error {
	bridgeURL := config.ConfigOr("PRINT_BRIDGE_URL", "http://localhost:3030/imprimir-usb")

	payload, err := json.Marshal(map[string]string{"htmlContent": htmlContent})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(bridgeURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("print bridge returned status %d", resp.StatusCode)
	}
	return nil
}

// PrintComanda renders and prints the kitchen ticket for an order.
func PrintComanda(order *model.Order, tableName, waiter string) error {
	data := ComandaData{
		PublicCode: order.PublicCode,
		TableName:  tableName,
		Waiter:     waiter,
		Time:       order.CreatedAt.Format("02/01/2006 15:04"),
		Items:      order.Items,
		Note:       order.Note,
	}
	html, err := renderTicket("templates/comanda.html", data)
	if err != nil {
		return err
	}
	return SendToPrinter(html)
}

// PrintPreCuenta renders and prints the pre-bill with a QR of the order code.
func PrintPreCuenta(order *model.Order, tableName string) error {
	qrPng, err := utils.GenerateQRCode(order.PublicCode, 128)
	if err != nil {
		return err
	}
	data := PreCuentaData{
		PublicCode: order.PublicCode,
		TableName:  tableName,
		Time:       time.Now().Format("02/01/2006 15:04"),
		Items:      order.Items,
		Total:      order.Total,
		QRBase64:   base64.StdEncoding.EncodeToString(qrPng),
	}
	html, err := renderTicket("templates/pre_cuenta.html", data)
	if err != nil {
		return err
	}
	return SendToPrinter(html)
}

// PrintArqueo renders and prints the cash count slip of a closed session.
func PrintArqueo(data ArqueoData) error {
	html, err := renderTicket("templates/arqueo.html", data)
	if err != nil {
		return err
	}
	return SendToPrinter(html)
}
