package config

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
)

const sessionCookieName = "sessionid"

// browserScanTimeout bounds the cookie-store scan so a locked or slow browser
// profile cannot stall dashboard startup.
const browserScanTimeout = 3 * time.Second

// BrowserSessionToken scans the local browsers' cookie stores for a live
// session cookie matching the API host. It is the last rung of the token
// ladder, after the environment variable and the credentials file, and lets
// someone already logged in through the web dashboard skip token setup.
func BrowserSessionToken(baseURL string) string {
	host := hostOf(baseURL)
	if host == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), browserScanTimeout)
	defer cancel()

	cookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(host), kooky.Name(sessionCookieName))
	if err != nil {
		return ""
	}
	return firstCookieValue(cookies)
}

func firstCookieValue(cookies []*kooky.Cookie) string {
	for _, c := range cookies {
		if c != nil && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := u.Host
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

// ResolveToken walks the token ladder for an account: explicit environment
// variable first, then the credentials file, then a browser session cookie.
func ResolveToken(accountID, tokenEnvValue, baseURL string) string {
	if tokenEnvValue != "" {
		return tokenEnvValue
	}
	if creds, err := LoadCredentials(); err == nil {
		if token := creds.Tokens[accountID]; token != "" {
			return token
		}
	}
	return BrowserSessionToken(baseURL)
}
