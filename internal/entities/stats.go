package entities

type DashboardStats struct {
	UsersByRole      map[UserRole]int64
	ActivePartners   int64
	ParcelsByStatus  map[ParcelStatusType]int64
	ActiveParcels    int64
	DeliveredToday   int64
	RewardPointsPaid int64
}

// AllParcelStatuses порядок для отчетов и метрик
var AllParcelStatuses = []ParcelStatusType{
	ParcelPending,
	ParcelAssigned,
	ParcelPickedUp,
	ParcelDelivered,
	ParcelCancelled,
}
