package handler

import (
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

var (
	once   sync.Once
	server *di.Server
)

// Handler adapts the application for serverless platforms that invoke a
// plain http.HandlerFunc. The object graph is built once per instance; the
// store only lives as long as the instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		server = di.InitializeServer()
	})

	server.HTTP.Handler().ServeHTTP(w, r)
}
