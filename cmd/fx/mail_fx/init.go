package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"stylishtype/internal/api/controllers"
	"stylishtype/internal/services"
)

var Module = fx.Provide(provideMailService, provideContactController)

func provideMailService() services.MailServiceInterface {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	instance, err := services.NewSMTPMailService(services.SMTPConfig{
		Host:         os.Getenv("SMTP_HOST"),
		Port:         port,
		Username:     os.Getenv("SMTP_USERNAME"),
		Password:     os.Getenv("SMTP_PASSWORD"),
		From:         os.Getenv("SMTP_FROM"),
		FromName:     os.Getenv("SMTP_FROM_NAME"),
		UseSSL:       port == 465,
		ContactInbox: os.Getenv("CONTACT_INBOX"),
		AppName:      os.Getenv("SITE_BRAND_NAME"),
		AppBaseURL:   os.Getenv("SITE_BASE_URL"),
	})
	if err != nil {
		log.Printf("Error initializing mail service: %v", err)
	}
	return instance
}

func provideContactController(mailService services.MailServiceInterface) *controllers.ContactController {
	return controllers.NewContactController(mailService)
}
