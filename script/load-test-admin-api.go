package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// SetLevelRequest is the PUT /levels/:tag payload
type SetLevelRequest struct {
	Level string `json:"level"`
}

// DiagnosticsResponse is the body of the /diagnostics endpoints
type DiagnosticsResponse struct {
	Bytes  int  `json:"bytes"`
	Denied bool `json:"denied"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	Denied       bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	DeniedDumps        int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	TagStats           map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of admin API call
type Scenario struct {
	Name   string
	Method string
	// Path builds the request path for a tag and a priority
	Path func(tag, priority string) string
	// Body returns the request payload, nil for none
	Body func(priority string) any
	// Accept lists the status codes counted as success
	Accept []int
}

var priorities = []string{"VERBOSE", "DEBUG", "INFO", "WARN", "ERROR", "ASSERT", "SUPPRESS"}

var scenarios = []Scenario{
	{
		Name: "Read level", Method: http.MethodGet,
		Path:   func(tag, _ string) string { return "/levels/" + tag },
		Accept: []int{http.StatusOK, http.StatusNotFound},
	},
	{
		Name: "Set level", Method: http.MethodPut,
		Path:   func(tag, _ string) string { return "/levels/" + tag },
		Body:   func(p string) any { return SetLevelRequest{Level: p} },
		Accept: []int{http.StatusOK},
	},
	{
		Name: "Clear level", Method: http.MethodDelete,
		Path:   func(tag, _ string) string { return "/levels/" + tag },
		Accept: []int{http.StatusNoContent, http.StatusNotFound},
	},
	{
		Name: "Stack dump", Method: http.MethodPost,
		Path:   func(_, p string) string { return "/diagnostics/stack?priority=" + p },
		Accept: []int{http.StatusOK, http.StatusBadRequest},
	},
	{
		Name: "Goroutine dump", Method: http.MethodPost,
		Path:   func(_, p string) string { return "/diagnostics/threads?priority=" + p },
		Accept: []int{http.StatusOK, http.StatusBadRequest},
	},
	{
		Name: "Memory info", Method: http.MethodPost,
		Path:   func(_, p string) string { return "/diagnostics/memory?priority=" + p },
		Accept: []int{http.StatusOK, http.StatusBadRequest},
	},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	tagsStr := flag.String("tags", "logcatd,xLogLib", "Comma-separated list of tags to change levels of")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the admin API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	var tags []string
	for _, tag := range strings.Split(*tagsStr, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = []string{"logcatd"}
	}

	fmt.Printf("Load testing admin API at %s across %d tags: %v\n", *baseURL, len(tags), tags)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ErrorCounts:   make(map[string]int),
		TagStats:      make(map[string]int),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, tags, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[result.Scenario+": "+errMsg]++
			}
			if result.Denied {
				stats.DeniedDumps++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			if completed := stats.SuccessfulRequests + stats.FailedRequests; completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(baseURL string, delayMs int, tags []string, jobs <-chan int, results chan<- TestResult, stats *TestStats) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		tag := tags[rand.Intn(len(tags))]
		scenario := scenarios[rand.Intn(len(scenarios))]
		priority := priorities[rand.Intn(len(priorities))]

		stats.Lock.Lock()
		stats.TagStats[tag]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		results <- send(client, baseURL, scenario, tag, priority)
	}
}

func send(client *http.Client, baseURL string, scenario Scenario, tag, priority string) TestResult {
	result := TestResult{Scenario: scenario.Name}

	var body bytes.Buffer
	if scenario.Body != nil {
		if err := json.NewEncoder(&body).Encode(scenario.Body(priority)); err != nil {
			result.Error = err
			return result
		}
	}

	req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path(tag, priority), &body)
	if err != nil {
		result.Error = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(startTime)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = slices.Contains(scenario.Accept, resp.StatusCode)
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	if resp.StatusCode == http.StatusOK && strings.HasPrefix(scenario.Path(tag, priority), "/diagnostics/") {
		var dump DiagnosticsResponse
		if json.NewDecoder(resp.Body).Decode(&dump) == nil {
			result.Denied = dump.Denied
		}
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Denied Dumps:        %d\n", stats.DeniedDumps)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests per second: %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- TAG DISTRIBUTION -----------------")
	for tag, count := range stats.TagStats {
		fmt.Printf("%-23s: %d requests (%.1f%%)\n", tag, count, float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count, float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
