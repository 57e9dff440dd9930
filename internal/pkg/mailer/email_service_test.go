package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateMessageFromHeader(t *testing.T) {
	s := &emailService{
		senderEmail: "noreply@cpd-events.example",
		senderName:  "CPD Events",
	}

	m := s.certificateMessage("jane@example.com", "Jane Doe", "ACLS Workshop", []byte("%PDF-1.7"))

	from := m.GetHeader("From")
	require.Len(t, from, 1)
	// Display name only; the address part must be the configured mailbox.
	assert.Contains(t, from[0], "noreply@cpd-events.example")
	assert.Contains(t, from[0], "CPD Events")

	to := m.GetHeader("To")
	require.Len(t, to, 1)
	assert.Equal(t, "jane@example.com", to[0])

	subject := m.GetHeader("Subject")
	require.Len(t, subject, 1)
	assert.Equal(t, "Your certificate for ACLS Workshop", subject[0])
}
