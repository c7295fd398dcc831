package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	deviceIDs := make([]int, maxDevices)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			deviceIDs[i] = createDevice(i)
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

var providers = []string{"Verizon", "AT&T", "T-Mobile"}

func createDevice(index int) int {
	payload := map[string]string{
		"label":           fmt.Sprintf("BENCH-%04d", index),
		"imei":            uuid.NewString(),
		"networkProvider": providers[rnd.Intn(len(providers))],
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected status %v registering device %v", resp.StatusCode, index))
	}

	var device struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&device); err != nil {
		panic(err)
	}
	return device.ID
}

func doAction(deviceID int) {
	actions := []func(){
		genPostUsageAction(deviceID),
		genPostLocationAction(deviceID),
		genGetUsageAction(deviceID),
	}
	actionNames := []string{
		"PostUsage",
		"PostLocation",
		"GetUsage",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostUsageAction(deviceID int) func() {
	return func() {
		payload := map[string]string{
			"date":      time.Now().Format(time.RFC3339),
			"dataUsage": fmt.Sprintf("%.2f", rndFloat64(0.0, 5.0, 2)),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/devices/%d/usage", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("\nresponse status code != 201: %v\n", resp)
		}
	}
}

func genPostLocationAction(deviceID int) func() {
	return func() {
		payload := map[string]string{
			"latitude":  fmt.Sprintf("%.4f", rndFloat64(-90.0, 90.0, 4)),
			"longitude": fmt.Sprintf("%.4f", rndFloat64(-180.0, 180.0, 4)),
			"timestamp": time.Now().Format(time.RFC3339),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/devices/%d/locations", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("\nresponse status code != 201: %v\n", resp)
		}
	}
}

func genGetUsageAction(deviceID int) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/devices/%d/usage/7d", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
