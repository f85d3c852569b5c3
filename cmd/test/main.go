package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
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

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 3 * time.Minute,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the profiler server")
	testType := flag.String("test", "all", "Test type: all, health, examples, validation, generate, custom")
	product := flag.String("product", "", "Product description for profile generation (for custom test)")
	tone := flag.String("tone", "Professional", "Tone for profile generation")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("Gumroad Profiler - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests()
	case "health":
		client.testHealthCheck()
	case "examples":
		client.testExamples()
	case "validation":
		client.testValidation()
	case "generate":
		client.testProfileGeneration()
	case "custom":
		if *product == "" {
			printError("Product description is required for custom test. Use -product flag")
			os.Exit(1)
		}
		client.testCustomProfile(*product, *tone)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, examples, validation, generate, custom")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Examples", tc.testExamples},
		{"Validation", tc.testValidation},
		{"Profile Generation", tc.testProfileGeneration},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testExamples() bool {
	printTestHeader("Testing Examples Endpoint")

	url := fmt.Sprintf("%s/api/examples", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	for _, field := range []string{"examples", "tones"} {
		if _, ok := payload[field].([]interface{}); !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Examples are valid")
	printJSON(body)
	return true
}

// testValidation checks the request contract without spending a provider call.
func (tc *TestClient) testValidation() bool {
	printTestHeader("Testing Request Validation")

	cases := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"missing tone", http.MethodPost, `{"productInfo":"An icon pack"}`, http.StatusBadRequest},
		{"blank product", http.MethodPost, `{"productInfo":"   ","tone":"Witty"}`, http.StatusBadRequest},
		{"unknown tone", http.MethodPost, `{"productInfo":"An icon pack","tone":"Sarcastic"}`, http.StatusBadRequest},
	}

	url := fmt.Sprintf("%s/api/generate", tc.baseURL)
	ok := true
	for _, c := range cases {
		req, err := http.NewRequest(c.method, url, strings.NewReader(c.body))
		if err != nil {
			printError(fmt.Sprintf("%s: %v", c.name, err))
			ok = false
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := tc.client.Do(req)
		if err != nil {
			printError(fmt.Sprintf("%s: request failed: %v", c.name, err))
			ok = false
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != c.status {
			printError(fmt.Sprintf("%s: expected status %d, got %d (%s)", c.name, c.status, resp.StatusCode, string(body)))
			ok = false
			continue
		}
		printSuccess(fmt.Sprintf("%s: %d %s", c.name, resp.StatusCode, strings.TrimSpace(string(body))))
	}
	return ok
}

func (tc *TestClient) testProfileGeneration() bool {
	product := "A pack of 100+ high-quality icons for UI designers"
	return tc.testCustomProfile(product, "Professional")
}

func (tc *TestClient) testCustomProfile(product, tone string) bool {
	printTestHeader("Testing Profile Generation")

	url := fmt.Sprintf("%s/api/generate", tc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("%sProduct:%s %s\n", colorCyan, colorReset, product)
	fmt.Printf("%sTone:%s %s\n\n", colorCyan, colorReset, tone)

	request := map[string]string{
		"productInfo": product,
		"tone":        tone,
	}
	jsonData, _ := json.Marshal(request)

	started := time.Now()
	resp, err := tc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var content map[string]interface{}
	if err := json.Unmarshal(body, &content); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	sections := []string{
		"profileOverview", "visuals", "productDescriptionTemplate", "pricingStrategy",
		"promotionalContent", "seoKeywords", "navigationAndCTA", "coverImageIdeas",
	}
	for _, field := range sections {
		if _, ok := content[field].(map[string]interface{}); !ok {
			printError(fmt.Sprintf("Missing required section: %s", field))
			return false
		}
	}

	printSuccess(fmt.Sprintf("Profile generation completed in %s", time.Since(started).Round(time.Millisecond)))

	images := 0
	if cover, ok := content["coverImageIdeas"].(map[string]interface{}); ok {
		if list, ok := cover["images"].([]interface{}); ok {
			images = len(list)
		}
		// Images are large base64 blobs; keep the printout readable.
		cover["images"] = fmt.Sprintf("<%d image(s)>", images)
	}
	fmt.Printf("%sCover images:%s %d\n", colorPurple, colorReset, images)

	pretty, _ := json.MarshalIndent(content, "", "  ")
	fmt.Printf("\n%sGenerated Profile:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(string(pretty))
	fmt.Println(strings.Repeat("=", 80))

	return true
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
