package samples

import (
	"encoding/json"
	"fmt"
	"io"

	"shopping-samples/internal/config"
	"shopping-samples/internal/merchant"
	"shopping-samples/internal/repositories/performance"
)

// Env is everything a sample needs to run.
type Env struct {
	Client *merchant.Client
	Info   *config.MerchantInfo
	Out    io.Writer
	// Reports is nil when no report database is configured.
	Reports performance.PerformanceRepository
	Retry   []merchant.RetryOption
}

func (e *Env) merchantID() uint64 {
	return e.Info.MerchantID
}

func (e *Env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Env) println(args ...interface{}) {
	fmt.Fprintln(e.Out, args...)
}

// printJSON writes v indented by two spaces. Map keys come out sorted.
func (e *Env) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %T: %w", v, err)
	}
	e.println(string(data))
	return nil
}

func (e *Env) retryOptions() []merchant.RetryOption {
	return append([]merchant.RetryOption{merchant.WithRetryOutput(e.Out)}, e.Retry...)
}
