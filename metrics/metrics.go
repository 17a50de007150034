// Package metrics defines prometheus metric types and provides convenience
// methods to add accounting to various parts of the pipeline.
//
// When defining new operations or metrics, these are helpful values to track:
//  - things coming into or go out of the system: packets, files, messages.
//  - the success or error status of any of the above.
//  - the distribution of message sizes.
package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessageCount counts decoded messages by body kind.
	//
	// Provides metrics:
	//    nldump_message_total
	// Example usage:
	//    metrics.MessageCount.WithLabelValues("Link").Inc()
	MessageCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nldump_message_total",
			Help: "The total number of netlink messages decoded, by body kind.",
		}, []string{"body"})

	// ErrorCount measures the number of errors
	// Provides metrics:
	//    nldump_error_total
	// Example usage:
	//    metrics.ErrorCount.With(prometheus.Labels{"type": "header"}).Inc()
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nldump_error_total",
			Help: "The total number of errors encountered.",
		}, []string{"type"})

	// AttributeCountHistogram tracks the number of attributes in each decoded body.
	AttributeCountHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nldump_attribute_count_histogram",
			Help: "attribute count histogram",
			Buckets: []float64{
				0, 1, 2, 3, 4, 5, 6, 8,
				10, 12.5, 16, 20, 25, 32, 40, 50, 63, 79,
				100,
			},
		},
		[]string{"body"})

	// PacketSizeHistogram tracks the size of each captured packet, including
	// the cooked header.
	PacketSizeHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "nldump_packet_size_histogram",
			Help: "captured packet size distribution",
			Buckets: []float64{
				16, 32, 40, 50, 63, 79,
				100, 125, 160, 200, 250, 320, 400, 500, 630, 790,
				1000, 1250, 1600, 2000, 2500, 3200, 4000, 5000, 6300, 7900,
				10000, 16000, 32000, 65536,
			},
		})

	// FileCount counts the number of capture files opened.
	//
	// Provides metrics:
	//   nldump_file_total
	// Example usage:
	//   metrics.FileCount.Inc()
	FileCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nldump_file_total",
			Help: "Number of capture files opened.",
		},
	)
)

func init() {
	log.Println("Prometheus metrics in nl-dump.metrics are registered.")
}
