// Package domain contains the core business entities for the screener:
// resume documents, retrieval chunks, scoring criteria and candidate ratings.
// It has no dependencies on adapters or external services.
package domain
