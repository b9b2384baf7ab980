// Package identity holds the account principal and its persistence.
//
// The plaintext login/registration payload (Credentials) and the persisted
// row (StoredAccount) are distinct types on purpose: the store only accepts
// StoredAccount, whose password field is a hash by construction, so plaintext
// can never cross into persistence by accident.
package identity
