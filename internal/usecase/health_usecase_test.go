package usecase_test

import (
	"context"
	"errors"
	"testing"

	"employee-profile-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	ok := usecase.PingFunc(func(context.Context) error { return nil })
	down := usecase.PingFunc(func(context.Context) error { return errors.New("refused") })

	status, healthy := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": ok}).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, map[string]string{"status": "ok", "database": "ok"}, status)

	status, healthy = usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": ok, "redis": down}).Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "unavailable", status["redis"])
}
