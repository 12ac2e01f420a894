// Package postal looks up Indian PIN codes through api.postalpincode.in.
// The lookup is best effort: a network or upstream failure falls back to a
// small table of well-known PINs, and callers degrade to manual address
// entry when that misses too.
package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

var (
	ErrInvalidPin  = errors.New("invalid pin code")
	ErrPinNotFound = errors.New("pin code not found")
)

var pinPattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

type Info struct {
	City    string
	State   string
	Country string
	Area    string
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// upstream response shape: a one-element array wrapping the post offices.
type apiResponse struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

func (c *Client) Lookup(ctx context.Context, pin string) (Info, error) {
	if !pinPattern.MatchString(pin) {
		return Info{}, ErrInvalidPin
	}

	info, err := c.fetch(ctx, pin)
	if err != nil {
		// Degrade to the static table when the upstream is unreachable.
		if fallback, ok := simulatedPins[pin]; ok {
			return fallback, nil
		}
		return Info{}, ErrPinNotFound
	}
	return info, nil
}

func (c *Client) fetch(ctx context.Context, pin string) (Info, error) {
	url := fmt.Sprintf("%s/pincode/%s", c.baseURL, pin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Info{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("postal lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("postal lookup: status %d", resp.StatusCode)
	}

	var payload []apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Info{}, fmt.Errorf("decode response: %w", err)
	}
	if len(payload) == 0 || payload[0].Status != "Success" || len(payload[0].PostOffice) == 0 {
		return Info{}, fmt.Errorf("postal lookup: no match for %s", pin)
	}

	po := payload[0].PostOffice[0]
	return Info{City: po.District, State: po.State, Country: "India", Area: po.Name}, nil
}

// simulatedPins covers the metros the storefront shipped with, used when
// the upstream API is unreachable.
var simulatedPins = map[string]Info{
	"110001": {City: "New Delhi", State: "Delhi", Country: "India", Area: "Connaught Place"},
	"110002": {City: "New Delhi", State: "Delhi", Country: "India", Area: "Darya Ganj"},
	"400001": {City: "Mumbai", State: "Maharashtra", Country: "India", Area: "Fort"},
	"400002": {City: "Mumbai", State: "Maharashtra", Country: "India", Area: "Kalbadevi"},
	"560001": {City: "Bangalore", State: "Karnataka", Country: "India", Area: "GPO"},
	"560002": {City: "Bangalore", State: "Karnataka", Country: "India", Area: "Domlur"},
	"600001": {City: "Chennai", State: "Tamil Nadu", Country: "India", Area: "GPO"},
	"700001": {City: "Kolkata", State: "West Bengal", Country: "India", Area: "BBD Bag"},
	"500001": {City: "Hyderabad", State: "Telangana", Country: "India", Area: "GPO"},
	"380001": {City: "Ahmedabad", State: "Gujarat", Country: "India", Area: "GPO"},
	"411001": {City: "Pune", State: "Maharashtra", Country: "India", Area: "GPO"},
	"302001": {City: "Jaipur", State: "Rajasthan", Country: "India", Area: "GPO"},
	"226001": {City: "Lucknow", State: "Uttar Pradesh", Country: "India", Area: "GPO"},
	"208001": {City: "Kanpur", State: "Uttar Pradesh", Country: "India", Area: "GPO"},
	"201301": {City: "Noida", State: "Uttar Pradesh", Country: "India", Area: "Sector 1"},
	"122001": {City: "Gurgaon", State: "Haryana", Country: "India", Area: "Sector 1"},
	"144001": {City: "Jalandhar", State: "Punjab", Country: "India", Area: "GPO"},
	"160001": {City: "Chandigarh", State: "Chandigarh", Country: "India", Area: "Sector 1"},
}
