// Package cli provides the interactive jobdesk command-line client.
//
// It wires configuration, the local sqlite store, the REST API client and an
// interactive REPL. On start the persisted session is bootstrapped, then the
// user browses postings with client-side filtering and pagination; candidates
// apply to postings, recruiters manage postings, applications and their
// company profile.
//
// Every command is checked against the route guard before it runs: commands
// that need a session redirect to login, guest-only commands bounce a
// logged-in user, and role-gated commands are refused inline.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
