// Package visitor derives what the site knows about the person submitting a
// form: address, device and an approximate location.
package visitor

import (
	"net"
	"net/http"
	"strings"
)

// Device describes the client from its user agent.
type Device struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
	Kind    string `json:"kind"`
}

// Info is attached to submission notifications.
type Info struct {
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
	Device    Device    `json:"device"`
	Location  *Location `json:"location,omitempty"`
}

// FromRequest collects visitor info from request headers.
func FromRequest(r *http.Request) Info {
	ua := r.Header.Get("User-Agent")
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = "Direct"
	}
	return Info{
		IP:        ClientIP(r),
		UserAgent: ua,
		Referrer:  ref,
		Device:    ParseUserAgent(ua),
	}
}

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the
// remote address. "Unknown" when none is usable.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xr := strings.TrimSpace(r.Header.Get("X-Real-IP")); xr != "" {
		return xr
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}
	return "Unknown"
}

// ParseUserAgent does a coarse browser/OS/device classification.
func ParseUserAgent(userAgent string) Device {
	ua := strings.ToLower(userAgent)

	browser := "Unknown"
	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		browser = "Opera"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	}

	os := "Unknown"
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "mac"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	}

	kind := "Desktop"
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		kind = "Tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		kind = "Mobile"
	}

	return Device{Browser: browser, OS: os, Kind: kind}
}
