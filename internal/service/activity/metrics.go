package activity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sinkKafka    = "kafka"
	sinkPostgres = "postgres"
	sinkDropped  = "dropped"
)

var RecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "activity_recorded_total",
		Help: "Activity entries by the sink that accepted them",
	},
	[]string{"sink"},
)
