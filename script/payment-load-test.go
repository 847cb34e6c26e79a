package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// PaymentPayload is the body sent to POST /payment
type PaymentPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
	Amount        int64  `json:"amount"`
	PaymentMethod int    `json:"payment_method"`
	NameCard      string `json:"name_card,omitempty"`
	NumCard       string `json:"num_card,omitempty"`
	Expiration    string `json:"expiration,omitempty"`
	CVV           int    `json:"cvv,omitempty"`
}

// LoginResponse is the body returned by GET /login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Account is a username/password pair used to obtain a token
type Account struct {
	Username string
	Password string
	Token    string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Declined     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	DeclinedRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[string]int // Track requests per user
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// PaymentScenario defines a payment scenario
type PaymentScenario struct {
	Name   string // For stats tracking
	Method int    // 0 bank slip, 1 credit card, anything else is rejected
	Amount int64
	List   bool // GET /payment instead of creating one
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountsStr := flag.String("u", "admin:admin", "Comma-separated list of username:password accounts to distribute load across")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var accounts []*Account
	for _, pair := range strings.Split(*accountsStr, ",") {
		username, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if ok && username != "" {
			accounts = append(accounts, &Account{Username: username, Password: password})
		}
	}
	if len(accounts) == 0 {
		fmt.Println("No valid accounts given, expected -u user:pass[,user:pass]")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	for _, account := range accounts {
		token, err := login(client, *baseURL, account)
		if err != nil {
			fmt.Printf("Login failed for %s: %v\n", account.Username, err)
			return
		}
		account.Token = token
	}

	scenarios := []PaymentScenario{
		{Name: "Bank Slip Small", Method: 0, Amount: 1000},
		{Name: "Bank Slip Large", Method: 0, Amount: 250000},
		{Name: "Card Small", Method: 1, Amount: 1500},
		{Name: "Card Large", Method: 1, Amount: 99000},
		{Name: "Invalid Method", Method: 9, Amount: 100},
		{Name: "List Payments", List: true},
	}

	fmt.Printf("Load testing API across %d accounts\n", len(accounts))
	fmt.Printf("Payment scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, accounts, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Declined:
				stats.DeclinedRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.DeclinedRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func login(client *http.Client, baseURL string, account *Account) (string, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/login", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(account.Username, account.Password)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var body LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Token, nil
}

func newPaymentRequest(baseURL string, account *Account, scenario PaymentScenario) (*http.Request, error) {
	if scenario.List {
		return http.NewRequest(http.MethodGet, baseURL+"/payment", nil)
	}

	payload := PaymentPayload{
		Name:          account.Username,
		Email:         account.Username + "@example.com",
		CPF:           fmt.Sprintf("%011d", rand.Intn(100_000_000_000)),
		Amount:        scenario.Amount,
		PaymentMethod: scenario.Method,
	}
	if scenario.Method == 1 {
		payload.NameCard = strings.ToUpper(account.Username)
		payload.NumCard = "4111111111111111"
		payload.Expiration = "12/30"
		payload.CVV = 100 + rand.Intn(900)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/payment", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func worker(client *http.Client, baseURL string, delayMs int, accounts []*Account,
	scenarios []PaymentScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		account := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.UserStats[account.Username]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		req, err := newPaymentRequest(baseURL, account, scenario)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("X-Access-Token", account.Token)

		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = statusCode >= 200 && statusCode < 300
			// Declined cards and rejected methods are expected answers, not failures
			result.Declined = statusCode == http.StatusBadRequest
			if !result.Success && !result.Declined {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	answered := stats.SuccessfulRequests + stats.DeclinedRequests
	rawTps := float64(answered) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Declined/Rejected:   %d (%.1f%%)\n", stats.DeclinedRequests,
		float64(stats.DeclinedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Answered RPS:        %.2f (successful and declined / total time)\n", rawTps)
	fmt.Printf("Offered RPS:         %.2f (all requests / total time)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for username, count := range stats.UserStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", username, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
