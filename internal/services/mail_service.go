package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

type MailServiceInterface interface {
	// SendContactMessage forwards a contact-form submission to the shop inbox.
	SendContactMessage(name, email, subject, message string) error

	// SendOrderReceipt mails the buyer a summary of a completed order.
	SendOrderReceipt(order *db_models.Order) error
}

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@stylishtype.com"
	FromName   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool

	ContactInbox string // where contact-form mail lands
	AppName      string
	AppBaseURL   string
}

type smtpMailService struct {
	cfg        SMTPConfig
	messageTpl *template.Template
	receiptTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (MailServiceInterface, error) {
	return &smtpMailService{
		cfg:        cfg,
		messageTpl: template.Must(template.New("message").Parse(messageHTMLTemplate)),
		receiptTpl: template.Must(template.New("receipt").Parse(receiptHTMLTemplate)),
	}, nil
}

func (s *smtpMailService) SendContactMessage(name, email, subject, message string) error {
	var html bytes.Buffer
	err := s.messageTpl.Execute(&html, map[string]interface{}{
		"AppName": s.cfg.AppName,
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Message": message,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	return s.send(s.cfg.ContactInbox, "[Contact] "+subject, html.String(), text)
}

func (s *smtpMailService) SendOrderReceipt(order *db_models.Order) error {
	if order.Account.Email == "" {
		return nil
	}

	type receiptLine struct {
		Name    string
		License string
		Price   string
	}
	lines := make([]receiptLine, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, receiptLine{
			Name:    item.ProductName,
			License: item.LicenseName,
			Price:   "$" + utils.FormatAmount(item.UnitPrice*float64(item.Quantity)),
		})
	}

	var html bytes.Buffer
	err := s.receiptTpl.Execute(&html, map[string]interface{}{
		"AppName":       s.cfg.AppName,
		"Name":          order.Account.Name,
		"InvoiceNumber": order.InvoiceNumber,
		"Lines":         lines,
		"Total":         "$" + utils.FormatAmount(order.Total),
		"OrdersURL":     strings.TrimRight(s.cfg.AppBaseURL, "/") + "/account/orders",
		"Year":          time.Now().Year(),
	})
	if err != nil {
		return err
	}

	var text bytes.Buffer
	fmt.Fprintf(&text, "Thanks for your purchase!\n\nInvoice %s\n\n", order.InvoiceNumber)
	for _, line := range lines {
		fmt.Fprintf(&text, "%s (%s) %s\n", line.Name, line.License, line.Price)
	}
	fmt.Fprintf(&text, "\nTotal: $%s\n", utils.FormatAmount(order.Total))

	subject := "Your " + s.cfg.AppName + " receipt (" + order.InvoiceNumber + ")"
	return s.send(order.Account.Email, subject, html.String(), text.String())
}

const messageHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;padding:24px;background:#f8fafc;font-family:-apple-system,Helvetica,Arial,sans-serif;color:#0f172a;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;">
    <h2 style="margin:0 0 8px;">New contact message</h2>
    <p style="color:#475569;">From {{.Name}} &lt;{{.Email}}&gt;</p>
    <p style="font-weight:600;">{{.Subject}}</p>
    <p style="white-space:pre-wrap;line-height:1.6;">{{.Message}}</p>
    <p style="color:#94a3b8;font-size:13px;margin-top:32px;">© {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const receiptHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;padding:24px;background:#f8fafc;font-family:-apple-system,Helvetica,Arial,sans-serif;color:#0f172a;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;">
    <h2 style="margin:0 0 8px;">Thanks for your purchase{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p style="color:#475569;">Invoice {{.InvoiceNumber}}</p>
    <table style="width:100%;border-collapse:collapse;margin:24px 0;">
      {{range .Lines}}
      <tr>
        <td style="padding:8px 0;border-bottom:1px solid #e2e8f0;">{{.Name}}<br>
          <span style="color:#94a3b8;font-size:13px;">{{.License}}</span></td>
        <td style="padding:8px 0;border-bottom:1px solid #e2e8f0;text-align:right;">{{.Price}}</td>
      </tr>
      {{end}}
      <tr>
        <td style="padding:12px 0;font-weight:700;">Total</td>
        <td style="padding:12px 0;text-align:right;font-weight:700;">{{.Total}}</td>
      </tr>
    </table>
    <p><a href="{{.OrdersURL}}" style="color:#2563eb;">View your orders and downloads</a></p>
    <p style="color:#94a3b8;font-size:13px;margin-top:32px;">© {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS, implicit TLS
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()
		return s.deliver(c, auth, to, msg.Bytes())
	}

	// STARTTLS path
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}
	return s.deliver(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// RFC 2047 encoding for non-ASCII display names.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
