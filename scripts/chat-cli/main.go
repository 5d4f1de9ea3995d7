package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interactive console client for a running assistant instance. One
// session per invocation, so follow-up questions share history.
func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = strings.TrimRight(os.Args[1], "/")
	}

	sessionID := uuid.NewString()
	userID := "cli-" + uuid.NewString()[:8]
	client := &http.Client{Timeout: 60 * time.Second}

	fmt.Printf("Asha Assistant CLI — %s (session %s)\n", baseURL, sessionID)
	fmt.Println("Type a message and press Enter. Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		body, _ := json.Marshal(map[string]string{
			"user_input": input,
			"session_id": sessionID,
			"user_id":    userID,
		})
		resp, err := client.Post(baseURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("request failed: %v\n", err)
			continue
		}

		var envelope struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
			Data      struct {
				Response     string  `json:"response"`
				ResponseTime float64 `json:"response_time"`
				Language     string  `json:"language"`
			} `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&envelope)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("bad response: %v\n", err)
			continue
		}
		if envelope.ErrorCode != 0 {
			fmt.Printf("error: %s\n", envelope.Message)
			continue
		}

		fmt.Printf("\n%s\n\n(lang=%s, %.3fs)\n", envelope.Data.Response,
			envelope.Data.Language, envelope.Data.ResponseTime)
	}
}
