package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

type LoadTestConfig struct {
	BaseURL       string
	TotalRequests int
	Concurrency   int
	Duration      time.Duration
}

type Stats struct {
	TotalRequests   int64
	SuccessRequests int64
	FailedRequests  int64
	TotalLatency    int64
	MinLatency      int64
	MaxLatency      int64
	Errors          sync.Map
}

// refs holds the IDs the order payloads need.
type refs struct {
	CustomerID string
	EmployeeID string
	ProductID  string
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Service base URL")
	requests := flag.Int("requests", 1000, "Total number of requests")
	concurrency := flag.Int("concurrency", 10, "Number of parallel requests")
	duration := flag.Duration("duration", 0, "Test duration (0 = use -requests)")
	operation := flag.String("operation", "create", "Operation type: create, get, list, products, mixed")
	flag.Parse()

	config := LoadTestConfig{
		BaseURL:       *baseURL,
		TotalRequests: *requests,
		Concurrency:   *concurrency,
		Duration:      *duration,
	}

	fmt.Printf("Starting load test\n")
	fmt.Printf("URL: %s\n", config.BaseURL)
	fmt.Printf("Operation: %s\n", *operation)
	if config.Duration > 0 {
		fmt.Printf("Duration: %v\n", config.Duration)
	} else {
		fmt.Printf("Requests: %d\n", config.TotalRequests)
	}
	fmt.Printf("Concurrency: %d\n\n", config.Concurrency)

	r, err := bootstrap(config.BaseURL)
	if err != nil {
		fmt.Printf("Failed to bootstrap reference data: %v\n", err)
		return
	}

	stats := &Stats{
		MinLatency: int64(^uint64(0) >> 1), // max int64
	}

	startTime := time.Now()

	switch *operation {
	case "create":
		runLoop(config, stats, func(int64) {
			createOrder(config.BaseURL, r, stats)
		})
	case "get":
		orderIDs := createOrders(config.BaseURL, r, 100)
		if len(orderIDs) == 0 {
			fmt.Println("Failed to create orders for test")
			return
		}
		fmt.Printf("Created %d orders for testing\n\n", len(orderIDs))
		runLoop(config, stats, func(index int64) {
			getOrder(config.BaseURL, orderIDs[index%int64(len(orderIDs))], stats)
		})
	case "list":
		runLoop(config, stats, func(int64) {
			listOrders(config.BaseURL, stats)
		})
	case "products":
		runLoop(config, stats, func(int64) {
			listProducts(config.BaseURL, stats)
		})
	case "mixed":
		orderIDs := createOrders(config.BaseURL, r, 50)
		fmt.Printf("Created %d orders for mixed test\n\n", len(orderIDs))
		runLoop(config, stats, func(index int64) {
			op := index % 10
			switch {
			case op < 4:
				createOrder(config.BaseURL, r, stats)
			case op < 7:
				if len(orderIDs) > 0 {
					getOrder(config.BaseURL, orderIDs[index%int64(len(orderIDs))], stats)
				}
			case op < 9:
				listOrders(config.BaseURL, stats)
			default:
				listProducts(config.BaseURL, stats)
			}
		})
	default:
		fmt.Printf("Unknown operation: %s\n", *operation)
		return
	}

	elapsed := time.Since(startTime)

	printResults(stats, elapsed)
}

func runLoop(config LoadTestConfig, stats *Stats, fn func(index int64)) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, config.Concurrency)

	requestCount := int64(0)
	endTime := time.Now().Add(config.Duration)

	for (config.Duration <= 0 || !time.Now().After(endTime)) &&
		(config.Duration != 0 || requestCount < int64(config.TotalRequests)) {
		wg.Add(1)
		semaphore <- struct{}{}
		idx := atomic.AddInt64(&requestCount, 1)

		go func(index int64) {
			defer wg.Done()
			defer func() { <-semaphore }()

			fn(index)
		}(idx)
	}

	wg.Wait()
}

// bootstrap makes sure a customer, an employee, a category and a product
// exist, creating them through the API when the database is empty.
func bootstrap(baseURL string) (*refs, error) {
	r := &refs{}

	r.CustomerID = firstID(baseURL + "/customers")
	if r.CustomerID == "" {
		body := makeRequestRaw("POST", baseURL+"/customers", map[string]interface{}{
			"company_name": "Loadtest Trading",
			"contact_name": "Load Tester",
			"email":        "loadtest@example.com",
		})
		r.CustomerID = extractID(body)
	}

	r.EmployeeID = firstID(baseURL + "/employees")
	if r.EmployeeID == "" {
		body := makeRequestRaw("POST", baseURL+"/employees", map[string]interface{}{
			"first_name": "Load",
			"last_name":  "Tester",
			"email":      "load.tester@example.com",
		})
		r.EmployeeID = extractID(body)
	}

	r.ProductID = firstID(baseURL + "/products")
	if r.ProductID == "" {
		catBody := makeRequestRaw("POST", baseURL+"/categories", map[string]interface{}{
			"name": "Loadtest",
		})
		categoryID := extractID(catBody)
		if categoryID == "" {
			return nil, fmt.Errorf("could not create category")
		}
		body := makeRequestRaw("POST", baseURL+"/products", map[string]interface{}{
			"name":           "Loadtest Product",
			"category_id":    categoryID,
			"unit_price":     9.99,
			"units_in_stock": 1000,
		})
		r.ProductID = extractID(body)
	}

	if r.CustomerID == "" || r.EmployeeID == "" || r.ProductID == "" {
		return nil, fmt.Errorf("missing reference data (customer=%q employee=%q product=%q)",
			r.CustomerID, r.EmployeeID, r.ProductID)
	}
	return r, nil
}

func firstID(url string) string {
	body := makeRequestRaw("GET", url, nil)
	if body == "" {
		return ""
	}

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(body), &items); err != nil || len(items) == 0 {
		return ""
	}
	if id, ok := items[0]["id"].(string); ok {
		return id
	}
	return ""
}

func extractID(body string) string {
	if body == "" {
		return ""
	}
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return ""
	}
	if id, ok := result["id"].(string); ok {
		return id
	}
	return ""
}

func orderPayload(r *refs) map[string]interface{} {
	return map[string]interface{}{
		"customer_id": r.CustomerID,
		"employee_id": r.EmployeeID,
		"freight":     2.50,
		"items": []map[string]interface{}{
			{"product_id": r.ProductID, "quantity": 10},
		},
	}
}

func createOrder(baseURL string, r *refs, stats *Stats) string {
	return makeRequest("POST", baseURL+"/orders", orderPayload(r), stats)
}

func createOrders(baseURL string, r *refs, n int) []string {
	orderIDs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		body := makeRequestRaw("POST", baseURL+"/orders", orderPayload(r))
		if id := extractID(body); id != "" {
			orderIDs = append(orderIDs, id)
		}
	}
	return orderIDs
}

func getOrder(baseURL, orderID string, stats *Stats) string {
	return makeRequest("GET", baseURL+"/orders/"+orderID, nil, stats)
}

func listOrders(baseURL string, stats *Stats) string {
	return makeRequest("GET", baseURL+"/orders", nil, stats)
}

func listProducts(baseURL string, stats *Stats) string {
	return makeRequest("GET", baseURL+"/products", nil, stats)
}

func makeRequest(method, url string, payload interface{}, stats *Stats) string {
	start := time.Now()
	atomic.AddInt64(&stats.TotalRequests, 1)

	var reqBody io.Reader
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		recordError(stats, err)
		return ""
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		recordError(stats, err)
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	latency := time.Since(start).Milliseconds()
	recordLatency(stats, latency)

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		atomic.AddInt64(&stats.SuccessRequests, 1)
		return string(body)
	}

	atomic.AddInt64(&stats.FailedRequests, 1)
	recordError(stats, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body)))
	return ""
}

func makeRequestRaw(method, url string, payload interface{}) string {
	var reqBody io.Reader
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return ""
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func recordLatency(stats *Stats, latency int64) {
	atomic.AddInt64(&stats.TotalLatency, latency)

	for {
		old := atomic.LoadInt64(&stats.MinLatency)
		if latency >= old {
			break
		}
		if atomic.CompareAndSwapInt64(&stats.MinLatency, old, latency) {
			break
		}
	}

	for {
		old := atomic.LoadInt64(&stats.MaxLatency)
		if latency <= old {
			break
		}
		if atomic.CompareAndSwapInt64(&stats.MaxLatency, old, latency) {
			break
		}
	}
}

func recordError(stats *Stats, err error) {
	atomic.AddInt64(&stats.FailedRequests, 1)
	errMsg := err.Error()
	val, _ := stats.Errors.LoadOrStore(errMsg, new(int64))
	atomic.AddInt64(val.(*int64), 1)
}

func printResults(stats *Stats, elapsed time.Duration) {
	total := atomic.LoadInt64(&stats.TotalRequests)
	success := atomic.LoadInt64(&stats.SuccessRequests)
	failed := atomic.LoadInt64(&stats.FailedRequests)
	totalLatency := atomic.LoadInt64(&stats.TotalLatency)
	minLatency := atomic.LoadInt64(&stats.MinLatency)
	maxLatency := atomic.LoadInt64(&stats.MaxLatency)

	fmt.Printf("\nLoad Test Results\n")
	fmt.Printf("===================================================\n")
	fmt.Printf("Total time:           %v\n", elapsed)
	fmt.Printf("Total requests:       %d\n", total)
	fmt.Printf("Successful:           %d (%.2f%%)\n", success, float64(success)/float64(total)*100)
	fmt.Printf("Failed:               %d (%.2f%%)\n", failed, float64(failed)/float64(total)*100)
	fmt.Printf("\n")
	fmt.Printf("Throughput:           %.2f req/sec\n", float64(total)/elapsed.Seconds())
	fmt.Printf("\n")
	fmt.Printf("Latency:\n")
	fmt.Printf("  Average:            %d ms\n", totalLatency/total)
	fmt.Printf("  Minimum:            %d ms\n", minLatency)
	fmt.Printf("  Maximum:            %d ms\n", maxLatency)

	if failed > 0 {
		fmt.Printf("\nErrors:\n")
		stats.Errors.Range(func(key, value interface{}) bool {
			count := atomic.LoadInt64(value.(*int64))
			fmt.Printf("  [%d] %s\n", count, key.(string))
			return true
		})
	}
	fmt.Printf("===================================================\n")
}
