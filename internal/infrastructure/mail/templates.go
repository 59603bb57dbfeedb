package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// ReceiptLine is one rendered charge row in the receipt email.
type ReceiptLine struct {
	Label  string
	Amount string
}

// ReceiptEmailData feeds the monthly receipt template.
type ReceiptEmailData struct {
	ResidentName  string
	ApartmentName string
	Month         string
	Lines         []ReceiptLine
	Total         string
	DownloadURL   string
}

// ReminderEmailData feeds the unpaid-receipt reminder template.
type ReminderEmailData struct {
	ResidentName string
	Months       []string
	TotalDue     string
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
<h2>Receipt for {{.Month}}</h2>
<p>Dear {{.ResidentName}},</p>
<p>Your receipt for apartment {{.ApartmentName}} is ready.</p>
<table cellpadding="6" style="border-collapse: collapse;">
{{range .Lines}}<tr><td>{{.Label}}</td><td align="right">{{.Amount}}</td></tr>
{{end}}<tr><td><strong>Total</strong></td><td align="right"><strong>{{.Total}}</strong></td></tr>
</table>
{{if .DownloadURL}}<p><a href="{{.DownloadURL}}">Download the PDF receipt</a></p>{{end}}
<p>Building administration</p>
</body>
</html>`))

var reminderTemplate = template.Must(template.New("reminder").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
<h2>Payment reminder</h2>
<p>Dear {{.ResidentName}},</p>
<p>The following months are still unpaid:</p>
<ul>
{{range .Months}}<li>{{.}}</li>
{{end}}</ul>
<p>Total due: <strong>{{.TotalDue}}</strong></p>
<p>Please submit a payment voucher at your earliest convenience.</p>
<p>Building administration</p>
</body>
</html>`))

// RenderReceiptEmail renders the monthly receipt notification body
func RenderReceiptEmail(data ReceiptEmailData) (string, error) {
	var buf strings.Builder
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render receipt email: %w", err)
	}
	return buf.String(), nil
}

// RenderReminderEmail renders the unpaid-receipt reminder body
func RenderReminderEmail(data ReminderEmailData) (string, error) {
	var buf strings.Builder
	if err := reminderTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render reminder email: %w", err)
	}
	return buf.String(), nil
}
