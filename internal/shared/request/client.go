package request

import "strings"

const (
	ClientWeb    = "web"
	ClientMobile = "mobile"
	ClientAPI    = "api"
)

// ResolveClientType trusts the explicit header first, then falls back to a
// user-agent sniff. Web clients get httpOnly cookies; everyone else carries
// tokens in the response body.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientWeb, ClientMobile, ClientAPI:
		return strings.ToLower(strings.TrimSpace(header))
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "safari") || strings.Contains(ua, "chrome") {
		return ClientWeb
	}
	return ClientAPI
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}
