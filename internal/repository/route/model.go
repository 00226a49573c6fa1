package route

import "time"

type RouteDB struct {
	ID            int64
	PartnerID     int64
	Name          string
	FromLocation  string
	ToLocation    string
	DepartureTime string
	Frequency     string
	Capacity      int
	TransportMode string
	Active        bool
	CreatedAt     time.Time
}

type RouteModifyDB struct {
	PartnerID     *int64
	Name          *string
	FromLocation  *string
	ToLocation    *string
	DepartureTime *string
	Frequency     *string
	Capacity      *int
	TransportMode *string
}
