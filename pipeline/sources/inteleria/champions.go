// Package inteleria fetches the champion base stat list from the InTeleria
// API. This feed is the primary identity source of the catalog.
package inteleria

import (
	"encoding/json"
	"fmt"
	"net/http"
	"raidbook/pipeline/requests"
	"raidbook/pkg/config"
	"raidbook/pkg/messages"
)

// Champion is a single row of the InTeleria list feed.
// The name and image fields carry embedded HTML.
type Champion struct {
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Faction   string  `json:"faction"`
	Rarity    string  `json:"rarity"`
	Affinity  string  `json:"affinity"`
	Type      string  `json:"type"`
	HP        int     `json:"HP"`
	ATK       int     `json:"ATK"`
	DEF       int     `json:"DEF"`
	SPD       int     `json:"SPD"`
	CRate     float64 `json:"CRATE"`
	CDmg      float64 `json:"CDMG"`
	RES       int     `json:"RES"`
	ACC       int     `json:"ACC"`
	RatingAvg string  `json:"rating_avg"`
}

// Shape of the list response.
type listResponse struct {
	Data []Champion `json:"data"`
}

// FetchChampions gets the full champion list.
// The endpoint is paginated through a length parameter on the POST body, so
// a single oversized page returns everything.
func FetchChampions(limiter *requests.RateLimiter) ([]Champion, error) {
	limiter.Wait()

	url := fmt.Sprintf("%s/champions", config.Sources.InTeleriaURL)
	resp, err := requests.PostJSON(url, map[string]int{"length": 1200})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return list.Data, nil
}
