package google

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// NewFileTokenSource builds an oauth2.TokenSource from a stored token
// file. The file holds a JSON-encoded oauth2.Token, the format produced
// by a one-time consent flow run outside this tool.
//
// The returned TokenSource can be used with option.WithTokenSource()
// when creating Google API services. Expired tokens are reported by the
// API call itself; there is no client-side refresh without a client
// secret, so tokens are expected to carry a refresh grant or be
// regenerated externally.
func NewFileTokenSource(path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file %s: %w", path, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token file %s has no access_token", path)
	}

	return oauth2.StaticTokenSource(&token), nil
}
