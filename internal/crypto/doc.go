// Package crypto exposes the primitives used by courier.
//
// Contents
//
//   - Two-format RSA private key parsing, PKCS#1 with a PKCS#8 fallback
//     (ParseRSAPrivateKey)
//   - RS256 signing keys tagged with a key id (SigningKey)
//   - Certificate parsing and serial formatting for key identifiers
//     (ParseCertificatePEM, FormatSerial)
//   - A ChaCha20-Poly1305 payload cipher for message envelopes (SecretBox)
package crypto
