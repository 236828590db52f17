package resend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EmailSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "resend_email_send_duration_seconds",
		Help:    "Duration of email delivery requests",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	},
	[]string{"http_code"},
)
