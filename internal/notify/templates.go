package notify

import (
	"fmt"
	"html"

	"jobconnect/internal/domain"
)

// StatusEmail builds the subject and body for an application-status
// notification to the applicant.
func StatusEmail(status domain.ApplicationStatus, employeeName, jobTitle, companyName string) (subject, body string) {
	name := html.EscapeString(employeeName)
	title := html.EscapeString(jobTitle)
	company := html.EscapeString(companyName)

	switch status {
	case domain.StatusShortlisted:
		subject = fmt.Sprintf("Great news! You've been shortlisted for %s", jobTitle)
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Your application for <strong>%s</strong> at <strong>%s</strong> has been shortlisted. The employer will review your profile in detail and may contact you for an interview.</p><p>Best of luck!</p>",
			name, title, company)
	case domain.StatusRejected:
		subject = fmt.Sprintf("Update on your application for %s", jobTitle)
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Thank you for your interest in the <strong>%s</strong> position at <strong>%s</strong>. After careful consideration, the employer has decided not to move forward with your application.</p><p>Keep applying, and good luck with your search.</p>",
			name, title, company)
	case domain.StatusHired:
		subject = fmt.Sprintf("Congratulations! You've been hired for %s", jobTitle)
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>You have been <strong>hired</strong> for the position of <strong>%s</strong> at <strong>%s</strong>! The employer should contact you soon with next steps.</p><p>Congratulations!</p>",
			name, title, company)
	default:
		subject = fmt.Sprintf("Update on your application for %s", jobTitle)
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>The status of your application for <strong>%s</strong> at <strong>%s</strong> is now %s.</p>",
			name, title, company, html.EscapeString(string(status)))
	}
	return subject, body
}

// ResetEmail builds the password-reset message around the tokenized link.
func ResetEmail(resetURL string) (subject, body string) {
	return "Reset Your Password", fmt.Sprintf(
		"<p>Hello,</p><p>You requested a password reset. Click the link below to choose a new password. The link expires in 30 minutes.</p><p><a href=%q>Reset Password</a></p><p>If you did not request this, you can ignore this email.</p>",
		resetURL)
}

// ContactEmail forwards a contact-form submission to the platform inbox.
func ContactEmail(name, email, message string) (subject, body string) {
	return fmt.Sprintf("New contact form message from %s", name), fmt.Sprintf(
		"<p><strong>Name:</strong> %s<br><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
}
