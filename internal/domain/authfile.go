package domain

// AuthFile is the local auth record the external CLI keeps per
// authenticated username (~/.sfdx/<username>.json). Exactly one of
// PrivateKey and RefreshToken is expected to be populated.
type AuthFile struct {
	Username     string `json:"username"`
	InstanceURL  string `json:"instanceUrl"`
	ClientID     string `json:"clientId,omitempty"`
	PrivateKey   string `json:"privateKey,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// OrgDisplay is the JSON envelope of the external CLI's org-display
// command invoked with --verbose --json.
type OrgDisplay struct {
	Result OrgDisplayResult `json:"result"`
}

type OrgDisplayResult struct {
	SfdxAuthURL string `json:"sfdxAuthUrl,omitempty"`
}
