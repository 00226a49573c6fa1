package user

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"pathport/internal/entities"
	"pathport/internal/pkg/access"
)

var exportHeader = []string{
	"Name", "Email", "Phone", "Role", "Status", "Joined Date",
	"Total Parcels", "Delivered Parcels", "Points Earned", "Rating",
}

// ExportUsers пишет CSV по тем же фильтрам, что и поиск, но без ограничения количества
func (s *User) ExportUsers(ctx context.Context, actor entities.Actor, filter entities.UserFilter, w io.Writer) error {
	if err := access.Require(actor, access.UserManage); err != nil {
		return err
	}
	if err := validateFilter(filter); err != nil {
		return err
	}
	filter.Limit = 0

	users, err := s.repository.Search(ctx, filter)
	if err != nil {
		return fmt.Errorf("export users: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("export users: %w", err)
	}
	for _, u := range users {
		if err := writer.Write(exportRow(&u)); err != nil {
			return fmt.Errorf("export users: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export users: %w", err)
	}
	return nil
}

func exportRow(u *entities.User) []string {
	return []string{
		u.Name,
		u.Email,
		u.Phone,
		roleTitle(u.Role),
		statusTitle(u.AccountStatus()),
		u.CreatedAt.Format("2006-01-02"),
		strconv.FormatInt(u.TotalParcels, 10),
		strconv.FormatInt(u.DeliveredParcels, 10),
		strconv.FormatInt(u.PointsEarned, 10),
		strconv.FormatFloat(u.Rating, 'f', 1, 64),
	}
}

func statusTitle(status entities.UserAccountStatus) string {
	switch status {
	case entities.AccountVerified:
		return "Verified"
	case entities.AccountSuspended:
		return "Suspended"
	default:
		return "Pending"
	}
}
