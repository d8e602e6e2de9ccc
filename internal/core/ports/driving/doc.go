// Package driving provides interfaces implemented by the application core
// (primary/inbound ports). CLI commands depend on these rather than on
// concrete services.
package driving
