// Package workflow holds the vocabulary shared by every stage of the procurement
// process: the roles taking part in it, the stable step codes C1..C33 recorded in
// each quote's history, the authorization gate mapping roles to steps, the acting
// user and the immutable history event.
//
// Step codes are persisted verbatim and must never be renumbered.
package workflow
