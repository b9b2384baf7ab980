// Package forum implements question and answer CRUD plus the ownership
// check guarding mutations.
//
// Reads are anonymous. Mutating handlers require a Session injected by the
// extractor middleware and confirm resource ownership against the store on
// every request; ownership is never cached. Text submitted by users passes
// through the profanity call-out before it is stored.
package forum
