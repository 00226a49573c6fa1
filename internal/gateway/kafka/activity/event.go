package activity

import (
	"time"

	"pathport/internal/entities"
)

// Event - сообщение топика activity.recorded, его же читает воркер
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromDomain(entry *entities.ActivityEntry) Event {
	return Event{
		Title:       entry.Title,
		Description: entry.Description,
		Category:    entry.Category.String(),
		Icon:        entry.Icon,
		CreatedAt:   entry.CreatedAt,
	}
}

func (e Event) ToDomain() entities.ActivityEntry {
	return entities.ActivityEntry{
		Title:       e.Title,
		Description: e.Description,
		Category:    entities.ActivityCategory(e.Category),
		Icon:        e.Icon,
		CreatedAt:   e.CreatedAt,
	}
}
