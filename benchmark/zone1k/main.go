package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	farmGrpc "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/grpc"
)

var maxZones int = 1000
var eventsPerZone int = 6
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient farmGrpc.AnalyticsServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var severities = []string{"low", "medium", "high"}
var diseases = []string{"Leaf Blight", "Powdery Mildew", "Rust", "Leaf Spot", ""}

func main() {
	zoneIDs := make([]string, maxZones)
	for i := range maxZones {
		zoneIDs[i] = fmt.Sprintf("%c%d", 'A'+rune(i%26), i/26+1)
	}
	fmt.Printf("generated %v zone IDs\n", maxZones)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.Dial(grpcHostPort, grpc.WithInsecure())
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = farmGrpc.NewAnalyticsServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxZones {
		wg.Add(1)
		go func() {
			registerZone(zoneIDs[i])
			fmt.Printf("\rregistered zone %v", zoneIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v zones: used time=%v seconds, throughput=%v action/second\n",
		maxZones, usedTime.Seconds(), float64(maxZones)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxZones {
		wg.Add(1)
		go func() {
			doEvents(zoneIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rrecorded events for %v zones: used time=%v seconds, throughput=%v action/second\n",
		maxZones, usedTime.Seconds(), float64(maxZones*eventsPerZone)/usedTime.Seconds(),
	)

	startTime = time.Now()
	report := fetchReport()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"built report over %v detections and %v sprays in %v seconds, global spray efficiency=%.2f\n",
		report.TotalDetections, report.TotalSprays, usedTime.Seconds(), report.GlobalSprayEfficiency,
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func rndPick(items []string) string {
	rndMu.Lock()
	defer rndMu.Unlock()
	return items[rnd.Intn(len(items))]
}

func postJSON(method, url string, payload any) {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("\nresponse status code %v for %s %s\n", resp.StatusCode, method, url)
	}
}

func registerZone(zoneID string) {
	postJSON(http.MethodPut, fmt.Sprintf("http://%s/zones/%s", httpHostPort, zoneID), map[string]any{
		"name":          "Zone " + zoneID,
		"crop":          rndPick([]string{"tomato", "rice", "cotton", "chilli"}),
		"area_hectares": rndFloat64(0.2, 5.0, 2),
	})
}

func checkGrpc(resp *structpb.Struct, err error) {
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	st := resp.GetFields()["status"].GetStructValue().GetFields()
	if !st["success"].GetBoolValue() {
		fmt.Printf("\nresponse success = false: %v\n", st["message"].GetStringValue())
	}
}

func recordDetection(zoneID string, at time.Time) {
	fields := map[string]any{
		"disease":        rndPick(diseases),
		"confidence":     rndFloat64(0.5, 1.0, 2),
		"severity_level": rndPick(severities),
		"timestamp":      at.Format(time.RFC3339),
	}

	if flipCoin() {
		postJSON(http.MethodPost, fmt.Sprintf("http://%s/zones/%s/detections", httpHostPort, zoneID), fields)
		return
	}

	fields["zone_id"] = zoneID
	req, err := structpb.NewStruct(fields)
	if err != nil {
		panic(err)
	}
	checkGrpc(grpcClient.RecordDetection(context.Background(), req))
}

func recordSpray(zoneID string, at time.Time) {
	fields := map[string]any{
		"chemical":     rndPick([]string{"Mancozeb", "Sulphur", "Copper oxychloride"}),
		"dosage":       rndFloat64(0.5, 4.0, 1),
		"timestamp":    at.Format(time.RFC3339),
		"triggered_by": rndPick([]string{"manual", "auto"}),
	}

	if flipCoin() {
		postJSON(http.MethodPost, fmt.Sprintf("http://%s/zones/%s/sprays", httpHostPort, zoneID), fields)
		return
	}

	fields["zone_id"] = zoneID
	req, err := structpb.NewStruct(fields)
	if err != nil {
		panic(err)
	}
	checkGrpc(grpcClient.RecordSpray(context.Background(), req))
}

// doEvents replays a few days of detections for a zone with a spray following some of them.
func doEvents(zoneID string) {
	at := time.Now().Add(-72 * time.Hour)
	for range eventsPerZone / 2 {
		recordDetection(zoneID, at)
		if flipCoin() {
			recordSpray(zoneID, at.Add(time.Duration(rndFloat64(0, 80, 0))*time.Hour))
		} else {
			recordDetection(zoneID, at.Add(time.Hour))
		}
		at = at.Add(12 * time.Hour)
		fmt.Printf("\rrecorded events for zone %v", zoneID)
	}
}

type reportSummary struct {
	TotalDetections       int     `json:"totalDetections"`
	TotalSprays           int     `json:"totalSprays"`
	GlobalSprayEfficiency float64 `json:"globalSprayEfficiency"`
}

func fetchReport() reportSummary {
	resp, err := http.Get(fmt.Sprintf("http://%s/analytics", httpHostPort))
	if err != nil {
		log.Fatal("Failed to fetch report:", err)
	}
	defer resp.Body.Close()

	var summary reportSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		log.Fatal("Failed to decode report:", err)
	}
	return summary
}
