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

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var server = flag.String("server", "http://localhost:5000", "the base URL of a running server")
var name = flag.String("name", "", "the participant name")
var balance = flag.Int("balance", -1, "the balance to set")

type balanceRequest struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

func main() {
	flag.Parse()

	if *name == "" {
		logrus.Fatal("-name is required")
	}

	if *balance < 0 {
		logrus.Fatal("-balance must be zero or greater")
	}

	password := getPassword()
	if password == "" {
		os.Exit(1)
	}

	body, err := json.Marshal(balanceRequest{Name: *name, Balance: *balance})
	if err != nil {
		logrus.WithError(err).Fatal("could not encode request")
	}

	req, err := http.NewRequest(http.MethodPost, *server+"/admin/balance", bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Fatal("could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Password", password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logrus.WithError(err).Fatal("could not reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		logrus.WithField("status", resp.StatusCode).Fatalf("server rejected the update: %s", strings.TrimSpace(string(b)))
	}

	fmt.Printf("Set balance of %s to %d\n", *name, *balance)
}

func getPassword() string {
	fmt.Print("Admin password: ")
	pwBytes, err := term.ReadPassword(0)
	fmt.Println("")
	if err != nil {
		logrus.WithError(err).Error("could not read password")
		return ""
	}

	return strings.TrimRight(string(pwBytes), "\r\n")
}
