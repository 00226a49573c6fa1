package route

import (
	"strings"
	"time"

	"pathport/internal/entities"
)

const maxCapacity = 100

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidDepartureTime(value string) bool {
	_, err := time.Parse("15:04", strings.TrimSpace(value))
	return err == nil
}

func isValidFrequency(frequency entities.RouteFrequency) bool {
	switch frequency {
	case entities.FrequencyOnce, entities.FrequencyDaily, entities.FrequencyWeekdays, entities.FrequencyWeekly:
		return true
	default:
		return false
	}
}

func isValidTransport(mode entities.TransportMode) bool {
	switch mode {
	case entities.TransportCar, entities.TransportBike, entities.TransportBus,
		entities.TransportTrain, entities.TransportWalk, entities.TransportOther:
		return true
	default:
		return false
	}
}

func validateRouteModify(m *entities.RouteModify) error {
	if m.Name == nil || m.FromLocation == nil || m.ToLocation == nil || m.DepartureTime == nil {
		return ErrMissingRequiredFields
	}

	if isBlank(m.Name) {
		return ErrInvalidName
	}
	if isBlank(m.FromLocation) || isBlank(m.ToLocation) {
		return ErrInvalidLocation
	}
	if !isValidDepartureTime(*m.DepartureTime) {
		return ErrInvalidDepartureTime
	}

	if m.Frequency == nil {
		frequency := entities.FrequencyDaily
		m.Frequency = &frequency
	} else if !isValidFrequency(*m.Frequency) {
		return ErrInvalidFrequency
	}

	if m.Capacity == nil {
		capacity := 1
		m.Capacity = &capacity
	} else if *m.Capacity <= 0 || *m.Capacity > maxCapacity {
		return ErrInvalidCapacity
	}

	if m.TransportMode == nil {
		mode := entities.TransportCar
		m.TransportMode = &mode
	} else if !isValidTransport(*m.TransportMode) {
		return ErrInvalidTransport
	}

	for _, f := range []*string{m.Name, m.FromLocation, m.ToLocation, m.DepartureTime} {
		*f = strings.TrimSpace(*f)
	}
	return nil
}
