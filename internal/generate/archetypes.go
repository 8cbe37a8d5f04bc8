package generate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"pkg.jsn.cam/haystack/pkg/record"
)

var names = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eve",
	"Frank", "Grace", "Henry", "Iris", "Jack",
}

var cities = []string{
	"New York", "London", "Tokyo", "Paris", "Berlin",
	"Sydney", "Toronto", "Mumbai", "Seoul", "Dubai",
}

var products = []string{
	"laptop", "phone", "tablet", "monitor", "keyboard",
	"mouse", "headphones", "camera", "speaker", "charger",
}

var colors = []string{
	"red", "blue", "green", "yellow", "purple",
	"orange", "pink", "black", "white", "silver",
}

var statuses = []string{
	"active", "inactive", "pending", "completed", "cancelled", "processing",
}

var currencies = []string{"USD", "EUR", "GBP", "JPY"}

var categories = []string{"electronics", "accessories", "computers", "audio"}

var eventTypes = []string{"login", "logout", "purchase", "view", "click", "search"}

var browsers = []string{"Chrome", "Firefox", "Safari", "Edge"}

var devices = []string{"desktop", "mobile", "tablet"}

var departments = []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}

var priorities = []string{"low", "medium", "high", "critical"}

// TimestampLayout is the ISO-8601 layout used by every timestamp field.
const TimestampLayout = "2006-01-02T15:04:05"

var (
	dateStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	dateDays  = int(dateEnd.Sub(dateStart).Hours() / 24)
)

// randomDate samples a day uniformly from 2020-01-01 through 2025-12-31 and
// formats it as an ISO-8601 timestamp at midnight.
func randomDate(r *rand.Rand) string {
	return dateStart.AddDate(0, 0, r.IntN(dateDays+1)).Format(TimestampLayout)
}

func choice(r *rand.Rand, set []string) string {
	return set[r.IntN(len(set))]
}

// intIn returns a uniform integer in [lo, hi] inclusive.
func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// floatIn returns a uniform float in [lo, hi) rounded to 2 decimals.
func floatIn(r *rand.Rand, lo, hi float64) float64 {
	return math.Round((lo+r.Float64()*(hi-lo))*100) / 100
}

func buildProfile(r *rand.Rand) *record.Record {
	return record.New().
		Set("id", intIn(r, 1000, 9999)).
		Set("name", choice(r, names)).
		Set("email", fmt.Sprintf("%s%d@example.com", strings.ToLower(choice(r, names)), intIn(r, 1, 999))).
		Set("age", intIn(r, 18, 80)).
		Set("city", choice(r, cities)).
		Set("active", r.IntN(2) == 0).
		Set("score", floatIn(r, 0, 100))
}

func buildProduct(r *rand.Rand) *record.Record {
	return record.New().
		Set("product_id", fmt.Sprintf("PROD-%d", intIn(r, 10000, 99999))).
		Set("name", choice(r, products)).
		Set("price", floatIn(r, 10, 2000)).
		Set("color", choice(r, colors)).
		Set("in_stock", r.IntN(2) == 0).
		Set("quantity", intIn(r, 0, 500)).
		Set("category", choice(r, categories))
}

func buildTransaction(r *rand.Rand) *record.Record {
	return record.New().
		Set("transaction_id", fmt.Sprintf("TXN-%d", intIn(r, 100000, 999999))).
		Set("user_id", intIn(r, 1000, 9999)).
		Set("amount", floatIn(r, 1, 10000)).
		Set("currency", choice(r, currencies)).
		Set("status", choice(r, statuses)).
		Set("timestamp", randomDate(r))
}

func buildEvent(r *rand.Rand) *record.Record {
	meta := record.New().
		Set("browser", choice(r, browsers)).
		Set("device", choice(r, devices))
	return record.New().
		Set("event_id", intIn(r, 1, 99999)).
		Set("event_type", choice(r, eventTypes)).
		Set("user", choice(r, names)).
		Set("location", choice(r, cities)).
		Set("timestamp", randomDate(r)).
		Set("metadata", meta)
}

func buildDepartment(r *rand.Rand) *record.Record {
	projects := make([]any, intIn(r, 1, 5))
	for i := range projects {
		projects[i] = record.New().
			Set("name", fmt.Sprintf("Project-%d", intIn(r, 1, 100))).
			Set("status", choice(r, statuses)).
			Set("priority", choice(r, priorities))
	}
	data := record.New().
		Set("employees", intIn(r, 5, 100)).
		Set("budget", floatIn(r, 50000, 5000000)).
		Set("projects", projects)
	return record.New().
		Set("department", choice(r, departments)).
		Set("data", data).
		Set("last_updated", randomDate(r))
}
