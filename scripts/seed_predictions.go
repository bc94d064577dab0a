//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"
)

type insertRequest struct {
	Project   string             `json:"project"`
	Camera    string             `json:"camera"`
	Position  string             `json:"position"`
	Timestamp time.Time          `json:"timestamp"`
	Counts    map[string]float64 `json:"counts"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	apiKey := flag.String("key", "dev", "API key")
	project := flag.String("project", "city_festival", "project id")
	area := flag.String("area", "main_stage", "area id used as the masked count key")
	camera := flag.String("camera", "cam_a", "camera id")
	position := flag.String("position", "north", "camera position")
	hours := flag.Float64("hours", 3, "hours of samples to generate, ending now")
	step := flag.Duration("step", 80*time.Second, "spacing between samples")
	flag.Parse()

	end := time.Now().UTC()
	start := end.Add(-time.Duration(*hours * float64(time.Hour)))

	client := &http.Client{Timeout: 10 * time.Second}
	inserted := 0

	for ts := start; !ts.After(end); ts = ts.Add(*step) {
		// Slow daily swell with a short ripple on top
		elapsed := ts.Sub(start).Hours()
		total := 200 + 150*math.Sin(elapsed) + 20*math.Sin(12*elapsed)

		req := insertRequest{
			Project:   *project,
			Camera:    *camera,
			Position:  *position,
			Timestamp: ts,
			Counts: map[string]float64{
				"total": math.Round(total),
				*area:  math.Round(total * 0.7),
			},
		}

		body, err := json.Marshal(req)
		if err != nil {
			log.Fatalf("Failed to marshal request: %v", err)
		}

		httpReq, err := http.NewRequest(http.MethodPost, *baseURL+"/api/v1/predictions", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-API-KEY", *apiKey)

		resp, err := client.Do(httpReq)
		if err != nil {
			log.Fatalf("Failed to insert sample at %s: %v", ts.Format(time.RFC3339), err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			log.Fatalf("Unexpected status %d at %s", resp.StatusCode, ts.Format(time.RFC3339))
		}
		inserted++
	}

	fmt.Printf("✅ Inserted %d samples for %s@%s\n", inserted, *camera, *position)
	fmt.Printf("   Window: %s .. %s\n", start.Format(time.RFC3339), end.Format(time.RFC3339))
	fmt.Printf("   Try: POST %s/api/v1/projects/%s/areas/%s/predictions/aggregate\n", *baseURL, *project, *area)
}
