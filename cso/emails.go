package main

import (
	"bytes"
	"errors"
	"html/template"
	"path/filepath"

	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var templates *template.Template

type sgEmailFields struct {
	From    *sgmail.Email
	To      []*sgmail.Email
	Cc      []*sgmail.Email
	Bcc     []*sgmail.Email
	Subject string
}

const (
	TICKET_ALERT_EMAIL_TEMPLATE = "ticket_alert.html"
	DAILY_DIGEST_EMAIL_TEMPLATE = "daily_digest.html"
)

func initEmailTemplates() {
	absPath := "/etc/worksuite/cso/templates/*"
	if !env.Production {
		absPath, _ = filepath.Abs("./cso/templates/*")
	}

	templates = template.Must(template.ParseGlob(absPath))
}

type TicketAlertEmailBody struct {
	Title       string
	Description string
	Priority    string
}

type DailyDigestEmailBody struct {
	PendingCount   int64
	ReviewingCount int64
	FollowupCount  int64
	OpenTickets    int64
}

func sendTicketAlertEmail(ticket Ticket) {
	emailHeaderInfo := sgEmailFields{
		Subject: "New Recruitment Ticket: " + ticket.Title,
		From:    &sgmail.Email{Name: "Worksuite CSO", Address: secrets.NO_REPLY_EMAILER_ADDRESS},
		To:      []*sgmail.Email{{Address: secrets.OPS_NOTIFICATION_ADDRESS}},
	}

	emailBody := TicketAlertEmailBody{
		Title:       ticket.Title,
		Description: ticket.Description,
		Priority:    ticket.Priority,
	}

	err := sendTemplatedEmailSendGrid(emailHeaderInfo, TICKET_ALERT_EMAIL_TEMPLATE, emailBody, "ticket_alert")
	if err != nil {
		ErrorLog.Printf("sendTicketAlertEmail emailing err: %v\n", err)
		return
	}

	InfoLog.Println("ticket alert email sent successfully")
}

func sendDailyDigestEmail() {
	body := DailyDigestEmailBody{}

	body.PendingCount, _ = dbmap.SelectInt("SELECT COUNT(*) FROM candidates WHERE status = ?", StatusPending)
	body.ReviewingCount, _ = dbmap.SelectInt("SELECT COUNT(*) FROM candidates WHERE status = ?", StatusReviewing)
	body.FollowupCount, _ = dbmap.SelectInt("SELECT COUNT(*) FROM candidates WHERE status = ?", StatusFollowup1)
	body.OpenTickets, _ = dbmap.SelectInt("SELECT COUNT(*) FROM tickets WHERE status = ?", TicketStatusOpen)

	emailHeaderInfo := sgEmailFields{
		Subject: "CSO Daily Recruitment Digest",
		From:    &sgmail.Email{Name: "Worksuite CSO", Address: secrets.NO_REPLY_EMAILER_ADDRESS},
		To:      []*sgmail.Email{{Address: secrets.OPS_NOTIFICATION_ADDRESS}},
	}

	err := sendTemplatedEmailSendGrid(emailHeaderInfo, DAILY_DIGEST_EMAIL_TEMPLATE, body, "daily_digest")
	if err != nil {
		ErrorLog.Printf("sendDailyDigestEmail emailing err: %v\n", err)
		return
	}

	InfoLog.Println("daily digest email sent successfully")
}

func sendTemplatedEmailSendGrid(emailInfo sgEmailFields, templateToUse string, templateData interface{}, categories ...string) error {
	temp := templates.Lookup(templateToUse)
	var tpl bytes.Buffer
	if err := temp.Execute(&tpl, templateData); err != nil {
		return errors.New("template execute err: " + err.Error())
	}
	htmlContent := tpl.String()

	m := sgmail.NewV3Mail()

	m.SetFrom(emailInfo.From)

	content := sgmail.NewContent("text/html", htmlContent)
	m.AddContent(content)

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(emailInfo.To...)
	personalization.AddCCs(emailInfo.Cc...)
	personalization.AddBCCs(emailInfo.Bcc...)
	personalization.Subject = emailInfo.Subject

	m.AddPersonalizations(personalization)

	m.AddCategories(categories...)

	request := sendgrid.GetRequest(secrets.SG_EMAILER_PASSWORD, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = sgmail.GetRequestBody(m)
	_, err := sendgrid.API(request)
	if err != nil {
		return errors.New("err SENDGRID API request: " + err.Error())
	}

	return nil
}
