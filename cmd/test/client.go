package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

const sampleTranscript = "I am so frustrated with the checkout, it's too slow. 'This is terrible' she said."

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string, timeout time.Duration) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// checkHealth expects GET /health to answer "OK".
func (tc *TestClient) checkHealth() error {
	status, body, err := tc.do(http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", status)
	}
	if string(body) != "OK" {
		return fmt.Errorf("expected body 'OK', got '%s'", string(body))
	}
	return nil
}

// checkTestEndpoint expects POST /api/test to report the server is working.
func (tc *TestClient) checkTestEndpoint() error {
	status, body, err := tc.do(http.MethodPost, "/api/test", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", status)
	}

	var resp struct {
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	if resp.Message != "Server is working!" || resp.Timestamp == "" {
		return fmt.Errorf("unexpected response: %s", string(body))
	}
	return nil
}

// checkMissingPrompt expects an empty prompt to be rejected with 400.
func (tc *TestClient) checkMissingPrompt() error {
	status, body, err := tc.do(http.MethodPost, "/api/gemini", []byte(`{"prompt":""}`))
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("expected status 400, got %d", status)
	}
	if !strings.Contains(string(body), "Missing prompt") {
		return fmt.Errorf("unexpected error body: %s", string(body))
	}
	return nil
}

// checkCORS expects a preflight request to succeed with permissive headers.
func (tc *TestClient) checkCORS() error {
	req, err := http.NewRequest(http.MethodOptions, tc.baseURL+"/api/gemini", nil)
	if err != nil {
		return err
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		return fmt.Errorf("expected Access-Control-Allow-Origin '*', got '%s'", got)
	}
	return nil
}

// analyze posts a transcript and returns the analysis, unwrapping the
// candidates envelope when the server uses it.
func (tc *TestClient) analyze(transcript string) (map[string]any, []byte, error) {
	payload, err := json.Marshal(map[string]string{"prompt": transcript})
	if err != nil {
		return nil, nil, err
	}

	status, body, err := tc.do(http.MethodPost, "/api/gemini", payload)
	if err != nil {
		return nil, nil, err
	}
	if status != http.StatusOK {
		return nil, body, fmt.Errorf("expected status 200, got %d: %s", status, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, body, fmt.Errorf("invalid JSON response: %w", err)
	}

	if _, ok := result["persona"]; !ok {
		text, ok := envelopeText(result)
		if !ok {
			return nil, body, fmt.Errorf("response has neither persona nor candidates")
		}
		result = nil
		if err := json.Unmarshal([]byte(text), &result); err != nil {
			return nil, body, fmt.Errorf("invalid JSON inside envelope: %w", err)
		}
	}

	if _, ok := result["persona"].(map[string]any); !ok {
		return nil, body, fmt.Errorf("response has no persona object")
	}
	return result, body, nil
}

func envelopeText(resp map[string]any) (string, bool) {
	candidates, _ := resp["candidates"].([]any)
	if len(candidates) == 0 {
		return "", false
	}
	candidate, _ := candidates[0].(map[string]any)
	content, _ := candidate["content"].(map[string]any)
	parts, _ := content["parts"].([]any)
	if len(parts) == 0 {
		return "", false
	}
	part, _ := parts[0].(map[string]any)
	text, ok := part["text"].(string)
	return text, ok
}

func (tc *TestClient) do(method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	fmt.Printf("%s %s\n", method, tc.baseURL+path)

	resp, err := tc.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}

func printPersona(result map[string]any) {
	persona, _ := result["persona"].(map[string]any)
	fmt.Printf("\n%sPersona:%s %v\n", colorPurple, colorReset, persona["name"])
	if info, ok := persona["personalInfo"].(map[string]any); ok {
		fmt.Printf("  %v, %v, %v, %v\n", info["name"], info["age"], info["role"], info["location"])
	}
	fmt.Printf("  \"%v\"\n", persona["quote"])
}
