// Package session implements stateless request authentication.
//
// A login issues an encrypted PASETO v4.local token carrying the account id
// and a validity window. On every mutating request the extractor middleware
// turns the bearer token back into a Session value, or rejects the request
// before any handler or store access runs. The server keeps no session table;
// token expiry is the sole invalidation mechanism.
package session
