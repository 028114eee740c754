package visitor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Location is an approximate position for an IP address.
type Location struct {
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Zip      string `json:"zip,omitempty"`
	Timezone string `json:"timezone"`
	ISP      string `json:"isp,omitempty"`
}

// Locator resolves IP addresses to locations.
type Locator interface {
	Locate(ctx context.Context, ip string) (*Location, error)
}

// maxGeoBody caps how much of a lookup response is read.
const maxGeoBody = 64 << 10

// IPAPILocator queries an ip-api.com compatible endpoint.
type IPAPILocator struct {
	baseURL string
	client  *http.Client
}

// NewIPAPILocator creates a locator for baseURL (e.g. http://ip-api.com/json/).
func NewIPAPILocator(baseURL string, timeout time.Duration) *IPAPILocator {
	return &IPAPILocator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
	Timezone   string `json:"timezone"`
	ISP        string `json:"isp"`
}

// Locate looks up ip. Private, loopback and unparsable addresses are not
// sent out and return (nil, nil).
func (l *IPAPILocator) Locate(ctx context.Context, ip string) (*Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil, nil
	}

	u := l.baseURL + url.PathEscape(ip) + "?fields=status,message,country,regionName,city,zip,timezone,isp"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating location request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location lookup returned status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxGeoBody)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding location: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("location lookup failed: %s", body.Message)
	}

	return &Location{
		City:     body.City,
		Region:   body.RegionName,
		Country:  body.Country,
		Zip:      body.Zip,
		Timezone: body.Timezone,
		ISP:      body.ISP,
	}, nil
}
