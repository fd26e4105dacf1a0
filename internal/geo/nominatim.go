// Package geo é um client mínimo da API de busca do Nominatim
// (OpenStreetMap). Uma chamada por local, melhor esforço.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient: o Nominatim público exige um User-Agent identificável.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode resolve "cidade, país" em lat/lon. Endereço não encontrado
// devolve (nil, nil); erro de rede/HTTP devolve erro.
func (c *Client) Geocode(ctx context.Context, endereco string) (*Point, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		c.baseURL, url.QueryEscape(endereco))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim respondeu %d", resp.StatusCode)
	}

	// lat/lon vêm como string no JSON do Nominatim
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, err
	}
	return &Point{Lat: lat, Lon: lon}, nil
}
