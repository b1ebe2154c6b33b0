package kiwoom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fazecat/thememaker/Internal/types"
)

const (
	apiIDThemeGroups = "ka90001"
	apiIDThemeStocks = "ka90002"
)

// Client talks to the Kiwoom REST API. It implements the theme data
// source the ranker consumes. Errors here DO propagate; the ranker is
// the layer that degrades them to empty results.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appKey     string
	secretKey  string
	token      string
}

func NewClient(baseURL, appKey, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		appKey:     appKey,
		secretKey:  secretKey,
	}
}

type tokenRequest struct {
	GrantType string `json:"grant_type"`
	AppKey    string `json:"appkey"`
	SecretKey string `json:"secretkey"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresDt string `json:"expires_dt"`
}

// IssueToken obtains an access token. Call once before the first data
// request; Kiwoom tokens live long enough for a full analysis run.
func (c *Client) IssueToken() error {
	body, err := json.Marshal(tokenRequest{
		GrantType: "client_credentials",
		AppKey:    c.appKey,
		SecretKey: c.secretKey,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal token request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/oauth2/token", "application/json;charset=UTF-8", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("token request returned status %d: %s", resp.StatusCode, string(raw))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.Token == "" {
		return fmt.Errorf("token response contained no token")
	}

	c.token = tr.Token
	return nil
}

type themeGroupsRequest struct {
	QryType    string `json:"qry_tp"`
	DateType   string `json:"date_tp"`
	ThemeName  string `json:"thema_nm"`
	FluPlAmtTp string `json:"flu_pl_amt_tp"`
	ExchangeTp string `json:"stex_tp"`
}

type themeGroupsResponse struct {
	ThemeGroups []types.ThemeGroupRecord `json:"thema_grp"`
	ReturnCode  int                      `json:"return_code"`
	ReturnMsg   string                   `json:"return_msg"`
}

// GetTopThemes fetches the theme group list, ranked by period profit
// rate on the Kiwoom side, truncated to limit.
func (c *Client) GetTopThemes(limit int) ([]types.ThemeGroupRecord, error) {
	req := themeGroupsRequest{
		QryType:    "0",
		DateType:   "10",
		ThemeName:  "",
		FluPlAmtTp: "1",
		ExchangeTp: "1",
	}

	var resp themeGroupsResponse
	if err := c.post("/api/dostk/thme", apiIDThemeGroups, req, &resp); err != nil {
		return nil, err
	}
	if resp.ReturnCode != 0 {
		return nil, fmt.Errorf("theme group request rejected: %d %s", resp.ReturnCode, resp.ReturnMsg)
	}

	groups := resp.ThemeGroups
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

type themeStocksRequest struct {
	DateType   string `json:"date_tp"`
	ThemeCode  string `json:"thema_grp_cd"`
	ExchangeTp string `json:"stex_tp"`
}

type themeStocksResponse struct {
	types.ThemeStocksPayload
	ReturnCode int    `json:"return_code"`
	ReturnMsg  string `json:"return_msg"`
}

// GetThemeStocks fetches one theme's constituent stocks.
func (c *Client) GetThemeStocks(themeCode string) (*types.ThemeStocksPayload, error) {
	req := themeStocksRequest{
		DateType:   "2",
		ThemeCode:  themeCode,
		ExchangeTp: "1",
	}

	var resp themeStocksResponse
	if err := c.post("/api/dostk/thme", apiIDThemeStocks, req, &resp); err != nil {
		return nil, err
	}
	if resp.ReturnCode != 0 {
		return nil, fmt.Errorf("theme stocks request rejected: %d %s", resp.ReturnCode, resp.ReturnMsg)
	}

	return &resp.ThemeStocksPayload, nil
}

func (c *Client) post(path, apiID string, reqBody, respBody interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", apiID, err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", apiID, err)
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("api-id", apiID)
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", apiID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned status %d: %s", apiID, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", apiID, err)
	}
	return nil
}
