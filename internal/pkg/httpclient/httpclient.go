package httpclient

import (
	"time"

	"office-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.FailureThreshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.FailureThreshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	return circuit.NewHTTPClientWithBreaker(cb, timeout, nil)
}
