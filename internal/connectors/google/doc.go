// Package google provides shared infrastructure for the Google API
// collaborators.
//
// This package contains common utilities used by the gmail and calendar
// adapters including:
//   - A token source backed by a stored OAuth2 token file
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each adapter uses this package to create authenticated API clients:
//
//	ts, err := google.NewFileTokenSource(tokenPath)
//	svc, err := google.NewGmailService(ctx, ts)
//
// # OAuth2 Scopes
//
// The collaborators need these scopes on the stored token:
//   - https://www.googleapis.com/auth/gmail.send (restricted)
//   - https://www.googleapis.com/auth/calendar.events (sensitive)
package google
