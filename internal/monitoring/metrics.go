package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Metrics struct {
	mu            sync.RWMutex
	RequestCount  int64            `json:"request_count"`
	ErrorCount    int64            `json:"error_count"`
	StatusCodes   map[string]int64 `json:"status_codes"`
	Endpoints     map[string]int64 `json:"endpoint_calls"`
	StartTime     time.Time        `json:"start_time"`
	LastRequest   time.Time        `json:"last_request"`
	totalDuration time.Duration
}

type HealthCheckFunc func(ctx context.Context) error

type healthCheck struct {
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	LastRun time.Time `json:"last_run"`
}

var globalMetrics = &Metrics{
	StatusCodes: make(map[string]int64),
	Endpoints:   make(map[string]int64),
	StartTime:   time.Now(),
}

var (
	healthMu     sync.RWMutex
	healthChecks = make(map[string]HealthCheckFunc)
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		statusCode := c.Writer.Status()
		endpoint := c.Request.Method + " " + c.FullPath()

		globalMetrics.mu.Lock()
		globalMetrics.RequestCount++
		globalMetrics.totalDuration += time.Since(start)
		globalMetrics.LastRequest = time.Now()
		if statusCode >= 400 {
			globalMetrics.ErrorCount++
		}
		globalMetrics.StatusCodes[http.StatusText(statusCode)]++
		globalMetrics.Endpoints[endpoint]++
		globalMetrics.mu.Unlock()
	}
}

func GetMetrics() *Metrics {
	globalMetrics.mu.RLock()
	defer globalMetrics.mu.RUnlock()

	snapshot := &Metrics{
		RequestCount: globalMetrics.RequestCount,
		ErrorCount:   globalMetrics.ErrorCount,
		StatusCodes:  make(map[string]int64),
		Endpoints:    make(map[string]int64),
		StartTime:    globalMetrics.StartTime,
		LastRequest:  globalMetrics.LastRequest,
	}
	for k, v := range globalMetrics.StatusCodes {
		snapshot.StatusCodes[k] = v
	}
	for k, v := range globalMetrics.Endpoints {
		snapshot.Endpoints[k] = v
	}
	return snapshot
}

func RegisterHealthCheck(name string, checkFunc HealthCheckFunc) {
	healthMu.Lock()
	defer healthMu.Unlock()
	healthChecks[name] = checkFunc
}

func runHealthChecks() map[string]healthCheck {
	healthMu.RLock()
	defer healthMu.RUnlock()

	results := make(map[string]healthCheck, len(healthChecks))
	for name, checkFunc := range healthChecks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		check := healthCheck{Name: name, Status: "healthy", LastRun: time.Now()}
		if err := checkFunc(ctx); err != nil {
			check.Status = "unhealthy"
			check.Message = err.Error()
		}
		cancel()
		results[name] = check
	}
	return results
}

func MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, gin.H{
			"application": GetMetrics(),
			"system": gin.H{
				"uptime":          time.Since(globalMetrics.StartTime).String(),
				"goroutine_count": runtime.NumGoroutine(),
				"alloc_mb":        m.Alloc / 1024 / 1024,
				"go_version":      runtime.Version(),
			},
			"timestamp": time.Now(),
		})
	}
}

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := runHealthChecks()

		overallStatus := "healthy"
		status := http.StatusOK
		for _, check := range checks {
			if check.Status != "healthy" {
				overallStatus = "unhealthy"
				status = http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(status, gin.H{
			"status":    overallStatus,
			"checks":    checks,
			"uptime":    time.Since(globalMetrics.StartTime).String(),
			"timestamp": time.Now(),
		})
	}
}
