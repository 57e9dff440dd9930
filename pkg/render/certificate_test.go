package render

import (
	"testing"

	"cpd-events-be/pkg/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificatePDF(t *testing.T) {
	cert := Certificate{
		PageWidth:  842,
		PageHeight: 595,
		Placements: map[layout.FieldID]layout.Position{
			layout.FieldAttendeeName: {X: 301, Y: 260, FontSize: 28},
		},
		Values: SampleValues(),
	}

	data, err := CertificatePDF(cert)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]), "output must be a PDF document")
}

func TestCertificatePDFInvalidPageSize(t *testing.T) {
	_, err := CertificatePDF(Certificate{PageWidth: 0, PageHeight: 595})
	assert.Error(t, err)
}

func TestCertificatePDFSkipsEmptyValues(t *testing.T) {
	// Rendering with no values still yields a valid (blank) document.
	data, err := CertificatePDF(Certificate{
		PageWidth:  612,
		PageHeight: 792,
		Values:     map[layout.FieldID]string{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
