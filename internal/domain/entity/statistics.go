package entity

import "time"

// Statistics is the derived counter block stored inside the document.
// The totalWorkers, totalOrders and pendingWorkers fields are recomputed from
// the entity maps on every save and are never authoritative on their own.
type Statistics struct {
	TotalWorkers   int        `json:"totalWorkers"`
	TotalOrders    int        `json:"totalOrders"`
	PendingWorkers int        `json:"pendingWorkers"`
	LastBackup     *time.Time `json:"lastBackup"`
	LastUpdate     *time.Time `json:"lastUpdate"`
	StartupCount   int        `json:"startupCount"`
	LastStartup    *time.Time `json:"lastStartup"`
	Domain         string     `json:"domain"`
	WorkersToday   int        `json:"workersToday"`
	OrdersToday    int        `json:"ordersToday"`
	WebsiteVisits  int        `json:"websiteVisits"`
	LastReset      string     `json:"lastReset"` // UTC calendar day (YYYY-MM-DD) the daily counters were last zeroed.
}

// WebsiteStats keeps per-day visit and order counters keyed by YYYY-MM-DD.
type WebsiteStats struct {
	DailyVisits map[string]int `json:"dailyVisits"`
	DailyOrders map[string]int `json:"dailyOrders"`
}

// DayKey formats a timestamp as the UTC calendar day used for daily counters.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RolloverDay zeroes the daily counters the first time a write observes a new
// UTC calendar day. Returns true if a rollover happened.
func (s *Statistics) RolloverDay(now time.Time) bool {
	today := DayKey(now)
	if s.LastReset == today {
		return false
	}

	s.WorkersToday = 0
	s.OrdersToday = 0
	s.LastReset = today

	return true
}

// StatisticsSnapshot is the full derived view returned by the statistics
// aggregator. Unlike the stored Statistics block it is computed on demand by
// scanning the entity maps.
type StatisticsSnapshot struct {
	TotalWorkers         int        `json:"totalWorkers"`
	TotalOrders          int        `json:"totalOrders"`
	PendingWorkers       int        `json:"pendingWorkers"`
	ApprovedWorkers      int        `json:"approvedWorkers"`
	WorkersToday         int        `json:"workersToday"`
	OrdersToday          int        `json:"ordersToday"`
	PendingOrders        int        `json:"pendingOrders"`
	ProcessingOrders     int        `json:"processingOrders"`
	DeliveredOrders      int        `json:"deliveredOrders"`
	CustomerServiceCount int        `json:"customerServiceCount"`
	RiderCount           int        `json:"riderCount"`
	AdminCount           int        `json:"adminCount"` // Approved admin workers plus the super admin.
	WebsiteVisits        int        `json:"websiteVisits"`
	LastBackup           *time.Time `json:"lastBackup"`
	StartupCount         int        `json:"startupCount"`
	Domain               string     `json:"domain"`
}
