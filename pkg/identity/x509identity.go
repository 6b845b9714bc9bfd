package identity

import (
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

// X509Identity is an Identity backed by an X.509 certificate, the form used
// by every Hyperledger Fabric MSP.
type X509Identity struct {
	mspID       string
	certificate *x509.Certificate
}

// NewX509Identity creates an identity from an MSP ID and a parsed
// certificate.
func NewX509Identity(mspID string, certificate *x509.Certificate) *X509Identity {
	return &X509Identity{
		mspID:       mspID,
		certificate: certificate,
	}
}

// CertificateFromPEM parses a PEM-encoded X.509 certificate, as found in a
// Fabric MSP's signcerts directory.
func CertificateFromPEM(certificatePEM []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(certificatePEM)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing certificate")
	}

	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse certificate")
	}

	return certificate, nil
}

// MspID is the ID of the organization's MSP this identity belongs to.
func (x *X509Identity) MspID() string {
	return x.mspID
}

// Credentials returns the PEM encoding of the underlying X.509 certificate.
func (x *X509Identity) Credentials() []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: x.certificate.Raw,
	})
}

// Certificate returns the parsed X.509 certificate backing this identity.
func (x *X509Identity) Certificate() *x509.Certificate {
	return x.certificate
}
