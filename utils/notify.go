package utils

import (
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendOTPMessage delivers a verification code to a mobile number or email.
// The real SMS/email gateway sits outside this system; when SMTP is not
// configured (or the identifier is a phone number) we mock-send by logging,
// which is also what development environments use.
func SendOTPMessage(identifier, code string) error {
	identifier = strings.TrimSpace(identifier)

	if !strings.Contains(identifier, "@") {
		log.Printf("[MOCK SMS] to:%s code:%s", identifier, code)
		return nil
	}

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s code:%s", identifier, code)
		return nil
	}

	msg := []byte("To: " + identifier + "\r\n" +
		"Subject: Your verification code\r\n" +
		"\r\n" +
		"Your one-time verification code is " + code + ". It expires in 5 minutes.\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{identifier}, msg)
}
