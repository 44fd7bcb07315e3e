// Command replay drives a running API the way a real client would: it logs in
// for a token, then posts synthetic readings one by one.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/synthetic"
)

func main() {
	baseURL := flag.String("addr", "http://localhost:8000", "base URL of the API")
	username := flag.String("user", "testuser", "login username")
	password := flag.String("password", "testpassword", "login password")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	token, err := login(client, *baseURL, *username, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	series := synthetic.Readings(*username, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
	for _, reading := range series {
		if err := postReading(client, *baseURL, token, reading); err != nil {
			log.Fatalf("failed to post reading: %v", err)
		}
	}
	log.Printf("replayed %d readings for %s", len(series), *username)
}

func login(client *http.Client, baseURL, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := client.PostForm(baseURL+"/token", form)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}

func postReading(client *http.Client, baseURL, token string, reading models.Reading) error {
	payload, err := json.Marshal(map[string]interface{}{
		"user_id":         reading.UserID,
		"blood_sugar":     reading.BloodSugar,
		"meal_info":       reading.MealInfo,
		"medication_dose": reading.MedicationDose,
		"timestamp":       reading.Timestamp,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/add_data/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
