// AngelaMos | 2026
// dto.go

package dashboard

import (
	"database/sql"
	"time"
)

type UserStats struct {
	Talents     int `json:"talents"`
	MediaOwners int `json:"mediaOwners"`
	Total       int `json:"total"`
}

type BookingStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

type RevenueStats struct {
	Total         float64 `json:"total"`
	TotalBookings int     `json:"totalBookings"`
	Average       float64 `json:"average"`
}

type ActivityResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	TalentName  *string   `json:"talent_name"`
	CompanyName *string   `json:"company_name"`
}

type Stats struct {
	Users          UserStats          `json:"users"`
	Bookings       BookingStats       `json:"bookings"`
	Revenue        RevenueStats       `json:"revenue"`
	RecentActivity []ActivityResponse `json:"recentActivity"`
	CompletionRate int                `json:"completionRate"`
}

func ToActivityResponse(a Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		TalentName:  nullable(a.TalentName),
		CompanyName: nullable(a.CompanyName),
	}
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
