package config

import (
	"time"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/getsentry/sentry-go"
)

// SetupErrorTracking initializes Sentry when SENTRY_DSN is set and returns
// a flush function for shutdown. Error tracking is optional; a missing DSN
// disables it without failing startup.
func SetupErrorTracking(logger *log.Logger) (func(), error) {
	dsn := GetValueFromEnvironmentVariable("SENTRY_DSN", "")
	if dsn == "" {
		logger.Info("SENTRY_DSN not set; error tracking disabled")
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:        dsn,
		SampleRate: 1.0,
		Debug:      false,

		// Keep payloads conservative: no stack traces or server names by
		// default, so request data never rides along with an event.
		AttachStacktrace: false,
		ServerName:       "",
		Environment:      GetAppEnv(),
	})
	if err != nil {
		logger.Error("Failed to initialize error tracking", "error", err)
		return nil, err
	}

	logger.Info("Error tracking initialized")

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

// CaptureError forwards an error to Sentry when tracking is active.
func CaptureError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}
