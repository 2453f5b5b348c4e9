// Package notifications serves the static mock notification table.
package notifications

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/surpluslink/surpluslink/internal/domain"
)

// namespace seeds the deterministic notification IDs.
var namespace = uuid.MustParse("6f1c3b7e-2d4a-4c1e-9b8f-5a7d0e3c2b19")

// epoch anchors the mock timestamps so renders are reproducible.
var epoch = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

type seed struct {
	title   string
	message string
	age     time.Duration
	read    bool
}

var table = map[string][]seed{
	"donor-1": {
		{"Pickup confirmed", "City Food Bank will collect 40 meals at 6:30 PM today.", 20 * time.Minute, false},
		{"New NGO match", "Hope Shelter is interested in your bakery surplus.", 2 * time.Hour, false},
		{"Donation completed", "Your donation of 25 kg produce reached 3 families.", 26 * time.Hour, true},
	},
	"ngo-1": {
		{"New donation nearby", "Green Valley Restaurant posted 40 meals, 1.2 km away.", 10 * time.Minute, false},
		{"New donation nearby", "Sunrise Catering posted 15 kg of sandwiches.", 45 * time.Minute, false},
		{"Volunteer assigned", "Maya will handle tonight's pickup.", 3 * time.Hour, false},
		{"Delivery completed", "120 meals delivered to the downtown kitchen.", 30 * time.Hour, true},
	},
	"admin-1": {
		{"Weekly report ready", "12,450 meals saved across 47 donors this quarter.", 5 * time.Hour, true},
		{"New NGO registration", "Riverside Community Kitchen joined the platform.", 50 * time.Hour, true},
	},
}

// Repository is a read-only view over the mock table.
type Repository struct {
	byUser map[string][]domain.Notification
}

// NewRepository materializes the mock table.
func NewRepository() *Repository {
	byUser := make(map[string][]domain.Notification, len(table))
	for userID, seeds := range table {
		list := make([]domain.Notification, 0, len(seeds))
		for i, s := range seeds {
			list = append(list, domain.Notification{
				ID:        uuid.NewSHA1(namespace, []byte(userID+"/"+strconv.Itoa(i))).String(),
				UserID:    userID,
				Title:     s.title,
				Message:   s.message,
				CreatedAt: epoch.Add(-s.age),
				Read:      s.read,
			})
		}
		sort.SliceStable(list, func(a, b int) bool { return list[a].CreatedAt.After(list[b].CreatedAt) })
		byUser[userID] = list
	}
	return &Repository{byUser: byUser}
}

// List returns the user's notifications, newest first. Unknown users have none.
func (r *Repository) List(userID string) []domain.Notification {
	src := r.byUser[userID]
	out := make([]domain.Notification, len(src))
	copy(out, src)
	return out
}

// UnreadCount is the value the navbar badge displays.
func (r *Repository) UnreadCount(userID string) int {
	n := 0
	for _, item := range r.byUser[userID] {
		if !item.Read {
			n++
		}
	}
	return n
}

// UserIDs lists the users present in the table, sorted.
func (r *Repository) UserIDs() []string {
	ids := make([]string, 0, len(r.byUser))
	for id := range r.byUser {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
