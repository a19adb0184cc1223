package entity

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	Customers           int64 `json:"customers"`
	PointsInCirculation int64 `json:"points_in_circulation"`
	PointsEarned        int64 `json:"points_earned"`
	PointsSpent         int64 `json:"points_spent"`
	Orders              int64 `json:"orders"`
	Redemptions         int64 `json:"redemptions"`
	PendingPickups      int64 `json:"pending_pickups"`
	ActivePrizes        int64 `json:"active_prizes"`
}
