package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vetcare"

var (
	once sync.Once

	appointmentsBooked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Appointments created by service type.",
		},
		[]string{"service_type"},
	)

	appointmentStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_status_changes_total",
			Help:      "Appointment status transitions by target status.",
		},
		[]string{"status"},
	)

	cartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart mutations by operation.",
		},
		[]string{"op"},
	)

	uploadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_upload_failures_total",
			Help:      "Failed photo uploads.",
		},
	)
)

// Register registra las métricas (idempotente).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsBooked, appointmentStatusChanges, cartMutations, uploadFailures)
	})
}

// Handler expone /metrics.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

func IncAppointmentBooked(serviceType string) {
	appointmentsBooked.WithLabelValues(serviceType).Inc()
}

func IncAppointmentStatus(status string) {
	appointmentStatusChanges.WithLabelValues(status).Inc()
}

func IncCartMutation(op string) {
	cartMutations.WithLabelValues(op).Inc()
}

func IncUploadFailure() {
	uploadFailures.Inc()
}
