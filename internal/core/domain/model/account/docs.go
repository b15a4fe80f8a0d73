// Package account defines the actor vocabulary used for permission checks on
// task and route mutations: who is acting (uid, email), with which role, and
// whether the account is internal or belongs to a customer organisation.
//
// The package does not verify sessions or look up roles itself; actors are
// produced by the external identity verifier and trusted from there on.
package account
