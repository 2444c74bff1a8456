package di

import (
	"frontdesk/internal/workers/messaging"
	"frontdesk/transport/http"
)

// Server bundles what a process entrypoint starts: the HTTP transport and
// the background delivery worker, built from one object graph. The store is
// in memory, so the worker must share the graph or it would be marking
// deliveries in a second, empty hotel.
type Server struct {
	HTTP   *http.HTTP
	Worker *messaging.DeliveryWorker
}
