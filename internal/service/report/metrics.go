package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ParcelsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "parcels_by_status",
		Help: "Current number of parcels in each lifecycle status",
	},
	[]string{"status"},
)
