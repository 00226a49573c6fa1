package entities

import "time"

type Route struct {
	ID            int64
	PartnerID     int64
	Name          string
	FromLocation  string
	ToLocation    string
	DepartureTime string // HH:MM
	Frequency     RouteFrequency
	Capacity      int
	TransportMode TransportMode
	Active        bool
	CreatedAt     time.Time
}

type RouteFrequency string

const (
	FrequencyOnce     RouteFrequency = "once"
	FrequencyDaily    RouteFrequency = "daily"
	FrequencyWeekdays RouteFrequency = "weekdays"
	FrequencyWeekly   RouteFrequency = "weekly"
)

func (f RouteFrequency) String() string {
	return string(f)
}

type TransportMode string

const (
	TransportCar   TransportMode = "car"
	TransportBike  TransportMode = "bike"
	TransportBus   TransportMode = "bus"
	TransportTrain TransportMode = "train"
	TransportWalk  TransportMode = "walk"
	TransportOther TransportMode = "other"
)

func (m TransportMode) String() string {
	return string(m)
}

type RouteModify struct {
	ID            *int64
	PartnerID     *int64
	Name          *string
	FromLocation  *string
	ToLocation    *string
	DepartureTime *string
	Frequency     *RouteFrequency
	Capacity      *int
	TransportMode *TransportMode
}
