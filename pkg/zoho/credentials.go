package zoho

import "strings"

// DefaultBaseURL is the US data-center API domain.
const DefaultBaseURL = "https://www.zohoapis.com"

const missingCredentialsMessage = "Missing OAuth credentials. Provide X-CRM-Access-Token or all of X-CRM-Client-ID, X-CRM-Client-Secret, and X-CRM-Refresh-Token headers."

// Credentials identify one tenant. Either AccessToken is set, or all three of
// ClientID, ClientSecret and RefreshToken are.
type Credentials struct {
	BaseURL      string
	AccessToken  string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Validate checks that the credentials can produce a token.
func (c Credentials) Validate() error {
	if c.AccessToken != "" || c.canRefresh() {
		return nil
	}
	return NewAuthenticationError(missingCredentialsMessage)
}

func (c Credentials) canRefresh() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

func (c Credentials) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

// regionalTokenURLs is checked in order; the first matching marker wins.
var regionalTokenURLs = []struct {
	marker   string
	tokenURL string
}{
	{".eu", "https://accounts.zoho.eu/oauth/v2/token"},
	{".in", "https://accounts.zoho.in/oauth/v2/token"},
	{".com.au", "https://accounts.zoho.com.au/oauth/v2/token"},
	{".com.cn", "https://accounts.zoho.com.cn/oauth/v2/token"},
	{".jp", "https://accounts.zoho.jp/oauth/v2/token"},
}

const defaultTokenURL = "https://accounts.zoho.com/oauth/v2/token"

// TokenURL returns the accounts server that issues tokens for the data
// center behind baseURL.
func TokenURL(baseURL string) string {
	lower := strings.ToLower(baseURL)
	for _, r := range regionalTokenURLs {
		if strings.Contains(lower, r.marker) {
			return r.tokenURL
		}
	}
	return defaultTokenURL
}
