// Package directory provides the HTTP implementation of the
// domain.Directory capability used during identity bootstrap, plus the
// handler set the development directory server mounts.
//
// The directory maps node ids to PEM-encoded certificates and public
// keys. Requests are JSON over HTTP; a missing node id is reported as
// not-found rather than an error, and non-2xx statuses carry the full
// URL and status text to aid diagnostics.
package directory
