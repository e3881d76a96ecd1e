package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

var baseURL = flag.String("base-url", "http://localhost:8080", "server to exercise")

type report struct {
	Name    string   `json:"name"`
	Route   string   `json:"route"`
	Columns []string `json:"columns"`
}

func main() {
	flag.Parse()

	// Wait for server to start
	time.Sleep(2 * time.Second)

	// 1. Health Check
	checkEndpoint("/health", http.StatusOK)

	// 2. Catalog
	var reports []report
	if err := json.Unmarshal(checkEndpoint("/reports", http.StatusOK), &reports); err != nil {
		log.Fatalf("Decode catalog failed: %v", err)
	}
	if len(reports) != 5 {
		log.Fatalf("Expected 5 reports, got %d", len(reports))
	}

	// 3. Every report returns an array of rows with exactly the advertised keys
	for _, r := range reports {
		body := checkEndpoint(r.Route, http.StatusOK)
		var rows []map[string]interface{}
		if err := json.Unmarshal(body, &rows); err != nil {
			log.Fatalf("%s: expected a JSON array: %v", r.Route, err)
		}
		want := append([]string(nil), r.Columns...)
		sort.Strings(want)
		for i, row := range rows {
			var got []string
			for k := range row {
				got = append(got, k)
			}
			sort.Strings(got)
			if strings.Join(got, ",") != strings.Join(want, ",") {
				log.Fatalf("%s row %d: keys %v, want %v", r.Route, i, got, want)
			}
		}
		fmt.Printf("%s: %d rows\n", r.Name, len(rows))
	}

	fmt.Println("ALL TESTS PASSED")
}

func checkEndpoint(path string, expectedStatus int) []byte {
	fmt.Printf("Testing GET %s...\n", path)
	resp, err := http.Get(*baseURL + path)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != expectedStatus {
		log.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(respBody))
	}
	return respBody
}
