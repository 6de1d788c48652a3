package identity

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"courier/internal/crypto"
	"courier/internal/domain"
)

// CryptoIdentity is the node's identity: a signing key tagged with the
// certificate serial, the raw private key, and the certificate/public
// key material from the directory. It is composed once at startup and
// never mutated; after Publish it is shared read-only process-wide.
type CryptoIdentity struct {
	signing *crypto.SigningKey
	private *rsa.PrivateKey
	public  *domain.PublicPortion
}

// SigningKey returns the RS256 signing key. Its key id is the formatted
// certificate serial.
func (ci *CryptoIdentity) SigningKey() *crypto.SigningKey { return ci.signing }

// PrivateKey returns the raw RSA private key.
func (ci *CryptoIdentity) PrivateKey() *rsa.PrivateKey { return ci.private }

// PublicPortion returns the certificate and public key material.
func (ci *CryptoIdentity) PublicPortion() *domain.PublicPortion { return ci.public }

// Serial returns the formatted certificate serial.
func (ci *CryptoIdentity) Serial() string { return ci.signing.KeyID() }

// CommonName returns the certificate subject's common name.
func (ci *CryptoIdentity) CommonName() string { return ci.public.Cert.Subject.CommonName }

// Loader bootstraps a CryptoIdentity from a key file and the directory.
type Loader struct {
	directory domain.Directory

	// expectedDomain, when non-empty, must match the looked-up
	// certificate (VerifyHostname semantics, so SANs and wildcards
	// apply).
	expectedDomain string
}

// NewLoader returns a Loader over the given directory capability.
// expectedDomain may be empty to skip the certificate domain check.
func NewLoader(d domain.Directory, expectedDomain string) *Loader {
	return &Loader{directory: d, expectedDomain: expectedDomain}
}

// Load reads and parses the private key file, looks up the node's
// certificate, and composes the identity. Unreadable or unparsable key
// material is a *domain.ConfigurationError; a missing or unusable
// certificate is a *domain.SignEncryptError.
//
// An empty nodeID means Load was called in a context where no node
// identity applies (for example the broker role); that is broken call
// sequencing, not bad input, and panics.
func (l *Loader) Load(ctx context.Context, keyFile string, nodeID domain.NodeID) (*CryptoIdentity, error) {
	if nodeID == "" {
		panic("identity: Load called without a node id (broker context?)")
	}

	raw, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Msg:   fmt.Sprintf("unable to load private key from file %s\n%s", keyFile, enrollmentHint(nodeID)),
			Cause: err,
		}
	}
	pemText := strings.TrimSpace(string(raw))

	private, err := crypto.ParseRSAPrivateKey(pemText)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Msg:   "unable to interpret private key PEM as PKCS#1 or PKCS#8",
			Cause: err,
		}
	}
	signing, err := crypto.NewSigningKey(pemText)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Msg:   "unable to interpret private key PEM as PKCS#1 or PKCS#8",
			Cause: err,
		}
	}

	public, ok, err := l.directory.Lookup(ctx, nodeID)
	if err != nil || !ok {
		return nil, &domain.SignEncryptError{Msg: "unable to parse your certificate", Cause: err}
	}

	if l.expectedDomain != "" {
		if err := public.Cert.VerifyHostname(l.expectedDomain); err != nil {
			return nil, &domain.SignEncryptError{
				Msg:   fmt.Sprintf("certificate does not match configured domain %s", l.expectedDomain),
				Cause: err,
			}
		}
	}

	serial, err := crypto.FormatSerial(public.Cert.SerialNumber)
	if err != nil {
		return nil, err
	}

	ci := &CryptoIdentity{
		signing: signing.WithKeyID(serial),
		private: private,
		public:  public,
	}
	log.Info().
		Str("node", nodeID.String()).
		Str("serial", serial).
		Str("cname", ci.CommonName()).
		Msg("crypto identity loaded")
	return ci, nil
}

// enrollmentHint points the operator at the enrollment companion tool
// when key material is missing.
func enrollmentHint(nodeID domain.NodeID) string {
	with := ""
	if nodeID != "" {
		with = fmt.Sprintf(" with the node id %s", nodeID)
	}
	return fmt.Sprintf("If this node is not yet enrolled in the central vault, "+
		"please run the courier-enroll companion tool%s and follow the steps on screen. "+
		"After enrollment, restart this node and this message should disappear.", with)
}
