package parcel

import (
	"math"
	"net/mail"
	"strings"

	"pathport/internal/entities"
	"pathport/internal/pkg/factory/order_id"
)

const (
	maxWeightKg     = 1000
	weightScale     = 100 // weight хранится как NUMERIC(7, 2)
	maxRewardPoints = 10000
	maxTitleLength  = 200
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// validateParcelModify проверяет поля создания и проставляет значения по умолчанию
func validateParcelModify(m *entities.ParcelModify, defaultRewardPoints int64) error {
	if m.Title == nil ||
		m.PickupLocation == nil ||
		m.DeliveryLocation == nil ||
		m.ReceiverName == nil ||
		m.ReceiverPhone == nil ||
		m.Weight == nil {
		return ErrMissingRequiredFields
	}

	if isBlank(m.Title) || len(strings.TrimSpace(*m.Title)) > maxTitleLength {
		return ErrInvalidTitle
	}
	if isBlank(m.PickupLocation) || isBlank(m.DeliveryLocation) {
		return ErrInvalidLocation
	}
	if isBlank(m.ReceiverName) || !isValidPhone(*m.ReceiverPhone) {
		return ErrInvalidReceiver
	}
	if m.ReceiverEmail != nil && strings.TrimSpace(*m.ReceiverEmail) != "" && !isValidEmail(*m.ReceiverEmail) {
		return ErrInvalidReceiver
	}
	if !isValidWeight(*m.Weight) {
		return ErrInvalidWeight
	}

	if m.Size == nil {
		size := entities.SizeSmall
		m.Size = &size
	} else if !isValidSize(*m.Size) {
		return ErrInvalidSize
	}

	if m.Urgency == nil {
		urgency := entities.UrgencyNormal
		m.Urgency = &urgency
	} else if !isValidUrgency(*m.Urgency) {
		return ErrInvalidUrgency
	}

	if m.RewardPoints == nil {
		m.RewardPoints = &defaultRewardPoints
	} else if *m.RewardPoints < 0 || *m.RewardPoints > maxRewardPoints {
		return ErrInvalidRewardPoints
	}

	if m.Description == nil {
		empty := ""
		m.Description = &empty
	}
	if m.ReceiverEmail == nil {
		empty := ""
		m.ReceiverEmail = &empty
	}

	trim(m.Title, m.Description, m.PickupLocation, m.DeliveryLocation, m.ReceiverName, m.ReceiverPhone, m.ReceiverEmail)
	return nil
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// isValidWeight - не больше двух знаков после запятой, иначе колонка молча округлит
func isValidWeight(weight float64) bool {
	if math.IsNaN(weight) || weight <= 0 || weight > maxWeightKg {
		return false
	}

	scaled := weight * weightScale
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil && addr.Address == strings.TrimSpace(email)
}

func isValidSize(size entities.ParcelSize) bool {
	switch size {
	case entities.SizeSmall, entities.SizeMedium, entities.SizeLarge:
		return true
	default:
		return false
	}
}

func isValidUrgency(urgency entities.ParcelUrgency) bool {
	switch urgency {
	case entities.UrgencyNormal, entities.UrgencyExpress, entities.UrgencyUrgent:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.ParcelStatusType) bool {
	for _, s := range entities.AllParcelStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func isValidOrderID(orderID string) bool {
	return order_id.Valid(strings.TrimSpace(orderID))
}
