package types

// ------------------------------
// Response Types
// ------------------------------

// ConnectionStatus reports the outcome of a connectivity probe. OK means the
// database was reachable with the configured credentials; schema gaps are
// listed separately so callers can warn without failing.
type ConnectionStatus struct {
	OK                bool     `json:"ok"`
	DatabaseID        string   `json:"databaseId"`
	DatabaseTitle     string   `json:"databaseTitle,omitempty"`
	MissingProperties []string `json:"missingProperties,omitempty"`
	Error             string   `json:"error,omitempty"`
}
