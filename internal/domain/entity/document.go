package entity

import "time"

// DocumentVersion is the schema version written into every document.
const DocumentVersion = "1.0"

// Document is the single aggregate holding every entity map and the derived
// statistics. The whole document is read, mutated and written back as one
// unit; no component keeps a reference to it across mutation cycles.
type Document struct {
	Users    map[string]*User      `json:"users"`
	Workers  map[string]*Worker    `json:"workers"`
	Orders   map[string]*Order     `json:"orders"`
	Messages map[string][]*Message `json:"messages"` // Keyed by canonical conversation key.

	Settings   Settings       `json:"settings"`
	Backups    []BackupRecord `json:"backups"`
	Statistics Statistics     `json:"statistics"`

	Admin  SuperAdmin   `json:"admin"`
	Admins []AdminGrant `json:"admins"`

	WebsiteStats WebsiteStats `json:"websiteStats"`
	Version      string       `json:"version"`
}

// NewDocument returns a freshly initialized document with empty entity maps,
// zeroed statistics and default settings.
func NewDocument(admin SuperAdmin, domain string, now time.Time) *Document {
	return &Document{
		Users:    make(map[string]*User),
		Workers:  make(map[string]*Worker),
		Orders:   make(map[string]*Order),
		Messages: make(map[string][]*Message),
		Settings: DefaultSettings(),
		Backups:  []BackupRecord{},
		Statistics: Statistics{
			Domain:    domain,
			LastReset: DayKey(now),
		},
		Admin:  admin,
		Admins: []AdminGrant{},
		WebsiteStats: WebsiteStats{
			DailyVisits: make(map[string]int),
			DailyOrders: make(map[string]int),
		},
		Version: DocumentVersion,
	}
}

// Normalize repairs a document loaded from storage, filling in any maps or
// sections an older or hand-edited file may lack.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = make(map[string]*User)
	}
	if d.Workers == nil {
		d.Workers = make(map[string]*Worker)
	}
	if d.Orders == nil {
		d.Orders = make(map[string]*Order)
	}
	if d.Messages == nil {
		d.Messages = make(map[string][]*Message)
	}
	if d.Backups == nil {
		d.Backups = []BackupRecord{}
	}
	if d.Admins == nil {
		d.Admins = []AdminGrant{}
	}
	if d.WebsiteStats.DailyVisits == nil {
		d.WebsiteStats.DailyVisits = make(map[string]int)
	}
	if d.WebsiteStats.DailyOrders == nil {
		d.WebsiteStats.DailyOrders = make(map[string]int)
	}
	if d.Version == "" {
		d.Version = DocumentVersion
	}
}

// RecomputeStatistics makes the stored worker/order counters an exact
// function of the entity maps and stamps the update time. Called on every
// save so these fields can never go stale.
func (d *Document) RecomputeStatistics(now time.Time) {
	d.Statistics.TotalWorkers = len(d.Workers)
	d.Statistics.TotalOrders = len(d.Orders)

	pending := 0
	for _, w := range d.Workers {
		if w.Status == WorkerStatusPending {
			pending++
		}
	}
	d.Statistics.PendingWorkers = pending

	ts := now.UTC()
	d.Statistics.LastUpdate = &ts
}

// HasGrant reports whether an admin grant exists for userID.
func (d *Document) HasGrant(userID string) bool {
	for _, grant := range d.Admins {
		if grant.UserID == userID {
			return true
		}
	}

	return false
}

// AddGrant appends an admin grant for userID unless one already exists.
func (d *Document) AddGrant(userID, addedBy string, now time.Time) {
	if d.HasGrant(userID) {
		return
	}

	d.Admins = append(d.Admins, AdminGrant{
		UserID:  userID,
		AddedBy: addedBy,
		AddedAt: now.UTC(),
		Role:    RoleAdmin.String(),
	})
}

// RemoveGrant deletes every grant held by userID.
func (d *Document) RemoveGrant(userID string) {
	kept := d.Admins[:0]
	for _, grant := range d.Admins {
		if grant.UserID != userID {
			kept = append(kept, grant)
		}
	}
	d.Admins = kept
}
