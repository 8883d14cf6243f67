package usecase

import (
	"context"
	"time"
)

// Pinger is anything the health check can ping (database pool, cache client).
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	pingers map[string]Pinger
}

func NewHealthUsecase(pingers map[string]Pinger) HealthUsecase {
	return &healthUsecase{pingers: pingers}
}

// Check returns one status per dependency and whether all of them passed.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	status := map[string]string{"status": "ok"}
	for name, pinger := range u.pingers {
		if err := pinger.Ping(ctx); err != nil {
			status[name] = "unavailable"
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
