package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// Handle contact form submission with HTMX. Errors are answered with 200 so
// htmx swaps the error fragment into the page.
func (s *site) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil || !form.complete() {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in all fields.",
		})
		return
	}

	m, err := saveMessage(c.Request.Context(), s.db,
		strings.TrimSpace(form.Name), strings.TrimSpace(form.Email), strings.TrimSpace(form.Message))
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	if s.cfg.smtpConfigured() {
		go func() {
			if err := sendContactEmail(s.cfg, m); err != nil {
				log.Printf("Error relaying message %s: %v", m.ID, err)
			}
		}()
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Message sent successfully! (Note: This is a demo)",
	})
}

func (f contactForm) complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Message) != ""
}

func composeContactEmail(from, to string, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + stripCRLF(subject) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + stripCRLF(m.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// stripCRLF keeps submitted values from injecting extra mail headers.
func stripCRLF(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func sendContactEmail(cfg Config, m Message) error {
	to := cfg.ToEmail
	if to == "" {
		to = cfg.SMTPUser
	}
	msg := composeContactEmail(cfg.SMTPUser, to, m)

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	if err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.SMTPUser, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	log.Printf("Email sent successfully for message %s", m.ID)
	return nil
}
