// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): embedding and language-model backends,
// the persistent chunk index, document loaders and the Google
// mail/calendar collaborators.
package driven
