// ridectl is a terminal front end for the ride share board: it renders the
// recent list, submits ride requests, searches by destination/date, and
// shows full details for a chosen request.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AyushDadhich07/rider/client"
	"github.com/AyushDadhich07/rider/models"
)

// draft holds form state between attempts: a failed submit keeps what the
// user typed, a successful one resets to the defaults.
type draft struct {
	params client.CreateRideRequestParams
}

func newDraft() draft {
	return draft{params: client.CreateRideRequestParams{Destination: string(models.DestinationAirport)}}
}

func main() {
	baseURL := os.Getenv("RIDE_SHARE_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	api := client.New(baseURL)
	stdin := bufio.NewScanner(os.Stdin)

	fmt.Println("Ride Share Board —", baseURL)
	showRecent(api)

	submission := newDraft()
	for {
		fmt.Println("\n[1] submit a ride request  [2] search  [3] view details  [4] recent  [q] quit")
		switch prompt(stdin, "> ", "") {
		case "1":
			if submitForm(api, stdin, &submission) {
				submission = newDraft()
				showRecent(api)
			}
		case "2":
			searchForm(api, stdin)
		case "3":
			detailView(api, stdin)
		case "4":
			showRecent(api)
		case "q", "quit", "exit":
			return
		}
	}
}

// showRecent renders the recent list; a failed fetch renders an empty board
func showRecent(api *client.Client) {
	requests, err := api.RecentRideRequests()
	if err != nil {
		fmt.Println("Could not fetch recent ride requests:", err)
		requests = nil
	}
	fmt.Println("\nRecent Ride Requests")
	printSummaries(requests)
}

// submitForm collects the submission draft and posts it. Returns true on
// success; on failure the draft is kept so nothing the user typed is lost.
func submitForm(api *client.Client, stdin *bufio.Scanner, d *draft) bool {
	p := &d.params
	p.Name = prompt(stdin, "Name", p.Name)
	p.Phone = prompt(stdin, "Phone", p.Phone)
	p.Destination = prompt(stdin, "Destination (airport / railway station)", p.Destination)
	p.Date = prompt(stdin, "Date (YYYY-MM-DDTHH:MM)", p.Date)
	p.Notes = prompt(stdin, "Notes (optional)", p.Notes)

	created, err := api.CreateRideRequest(*p)
	if err != nil {
		fmt.Println("Failed to submit ride request:", err)
		return false
	}
	fmt.Printf("Ride request #%d submitted successfully!\n", created.ID)
	return true
}

// searchForm runs one search and replaces the result listing
func searchForm(api *client.Client, stdin *bufio.Scanner) {
	destination := prompt(stdin, "Destination filter (blank for any)", "")
	date := prompt(stdin, "Date filter YYYY-MM-DD (blank for any)", "")

	results, err := api.SearchRideRequests(destination, date)
	if err != nil {
		fmt.Println("Search failed:", err)
		results = nil
	}
	fmt.Println("\nSearch Results")
	if len(results) == 0 {
		fmt.Println("  No matching ride requests found.")
		return
	}
	printSummaries(results)
}

// detailView fetches and displays one full record
func detailView(api *client.Client, stdin *bufio.Scanner) {
	raw := prompt(stdin, "Ride request id", "")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fmt.Println("Not a valid id:", raw)
		return
	}

	ride, err := api.RideRequestDetail(uint(id))
	if err != nil {
		fmt.Println("Could not fetch ride details:", err)
		return
	}

	notes := ride.Notes
	if notes == "" {
		notes = "No additional notes"
	}
	fmt.Printf("\n%s's Ride Details\n", ride.Name)
	fmt.Println("  Destination:", ride.Destination)
	fmt.Println("  Date:       ", ride.Date.Local().Format("Jan 2, 2006 3:04 PM"))
	fmt.Println("  Phone:      ", ride.Phone)
	fmt.Println("  Notes:      ", notes)
	prompt(stdin, "(enter to close)", "")
}

func printSummaries(requests []models.RideRequestSummary) {
	if len(requests) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, r := range requests {
		fmt.Printf("  #%d  %s - %s - %s\n", r.ID, r.Name, r.Destination, r.Date.Local().Format("Jan 2, 2006 3:04 PM"))
	}
}

// prompt reads one line; an empty answer keeps the current value
func prompt(stdin *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else if label != "> " {
		fmt.Printf("%s: ", label)
	} else {
		fmt.Print(label)
	}
	if !stdin.Scan() {
		os.Exit(0)
	}
	answer := strings.TrimSpace(stdin.Text())
	if answer == "" {
		return current
	}
	return answer
}
