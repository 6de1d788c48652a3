package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"courier/internal/crypto"
	"courier/internal/domain"
)

// certRecord is the wire form of a directory entry.
type certRecord struct {
	CertPEM      string `json:"cert_pem"`
	PublicKeyPEM string `json:"public_key_pem"`
}

// HTTPClient looks up certificates over HTTP.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns an HTTPClient against the given base URL.
func NewHTTP(base string) *HTTPClient {
	return &HTTPClient{Base: base, HTTP: http.DefaultClient}
}

// Lookup fetches the certificate and public key material for id. A 404
// from the directory is (nil, false, nil).
func (c *HTTPClient) Lookup(ctx context.Context, id domain.NodeID) (*domain.PublicPortion, bool, error) {
	u := c.Base + "/certs/" + url.PathEscape(id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, false, errors.Errorf("directory get %s: %s", u, resp.Status)
	}
	var rec certRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, false, errors.Wrap(err, "directory response is not valid JSON")
	}
	cert, err := crypto.ParseCertificatePEM(rec.CertPEM)
	if err != nil {
		return nil, false, err
	}
	return &domain.PublicPortion{
		Cert:         cert,
		CertPEM:      rec.CertPEM,
		PublicKeyPEM: rec.PublicKeyPEM,
	}, true, nil
}

// Compile-time assertion that HTTPClient implements domain.Directory.
var _ domain.Directory = (*HTTPClient)(nil)
