// Package rejection defines the closed set of failure kinds produced by the
// request pipeline and the terminal responder that converts any of them into
// an HTTP response.
//
// Every error that can escape a handler or filter is one of the types in this
// package. The responder maps each kind to a fixed status and a fixed,
// generic body; underlying causes are carried on the error values for
// server-side logging and are never echoed to the client.
package rejection
