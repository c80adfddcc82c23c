package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobconnect/internal/domain"
)

func TestStatusEmailVariants(t *testing.T) {
	subject, body := StatusEmail(domain.StatusShortlisted, "Jane", "Backend Engineer", "Acme")
	assert.Contains(t, subject, "shortlisted")
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Acme")

	subject, _ = StatusEmail(domain.StatusHired, "Jane", "Backend Engineer", "Acme")
	assert.Contains(t, subject, "Congratulations")

	subject, body = StatusEmail(domain.StatusRejected, "Jane", "Backend Engineer", "Acme")
	assert.Contains(t, subject, "Update")
	assert.Contains(t, body, "not to move forward")
}

func TestStatusEmailEscapesHTML(t *testing.T) {
	_, body := StatusEmail(domain.StatusHired, "<script>alert(1)</script>", "Dev & Ops", "A<B")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Dev &amp; Ops")
}

func TestContactEmailEscapes(t *testing.T) {
	subject, body := ContactEmail("Eve", "eve@example.com", "<img src=x>")
	assert.Contains(t, subject, "Eve")
	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "eve@example.com")
}
