// Package services contains the application services that drive the
// screening pipeline: building the resume index, retrieving context for
// a query, and rating candidates against screening criteria.
//
// Services depend only on the driven ports, so any embedding backend,
// language model or index implementation can be swapped in.
package services
