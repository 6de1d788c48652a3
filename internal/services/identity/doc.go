// Package identity bootstraps the node's cryptographic identity.
//
// The Loader reads the private key file, parses it as PKCS#1 or PKCS#8,
// looks up the node's own certificate from the directory, tags the
// signing key with the certificate's formatted serial, and composes an
// immutable CryptoIdentity. Publish stores that identity in a
// process-wide slot exactly once; a second publish is a programming
// error and aborts.
package identity
