// Package accel models the accelerator the batched pipeline depends on and
// the explicit memory-cleanup step that runs between and after batches.
package accel

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/lemonit-eric-mao/MinerU/observability"
)

// ErrUnavailable is returned before any processing when batched execution
// has no accelerator to run on.
var ErrUnavailable = errors.New("accel: accelerator not available, batch analysis is unsupported on CPU")

// Device abstracts the accelerator recognition backends execute on. Cleanup
// never fails: FreeCache is best effort and has no return value.
type Device interface {
	Name() string
	// Available reports whether the device can actually be used. This is the
	// pipeline's fatal precondition.
	Available() bool
	// TotalMemory returns the device's total memory in bytes, or an error
	// when it cannot be determined.
	TotalMemory() (uint64, error)
	// FreeCache releases cached allocations held for reuse.
	FreeCache()
}

// CUDA returns a device backed by the first visible NVIDIA GPU. Probing goes
// through nvidia-smi so no driver bindings are needed at build time.
func CUDA() Device { return cudaDevice{} }

type cudaDevice struct{}

func (cudaDevice) Name() string { return "cuda" }

func (cudaDevice) Available() bool {
	if _, err := os.Stat("/dev/nvidiactl"); err == nil {
		return true
	}
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}

func (cudaDevice) TotalMemory() (uint64, error) {
	out, err := exec.Command("nvidia-smi", "--query-gpu=memory.total", "--format=csv,noheader,nounits").Output()
	if err != nil {
		return 0, err
	}
	line := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	mib, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, err
	}
	return mib << 20, nil
}

func (cudaDevice) FreeCache() { debug.FreeOSMemory() }

// Host returns a device backed by host memory. It is always available and is
// only meant for backends that run on the CPU anyway (for example local
// Tesseract); the batched pipeline still requires a real accelerator.
func Host() Device { return hostDevice{} }

type hostDevice struct{}

func (hostDevice) Name() string    { return "cpu" }
func (hostDevice) Available() bool { return true }

func (hostDevice) TotalMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func (hostDevice) FreeCache() { debug.FreeOSMemory() }

// Clean runs the unconditional cleanup step: collect garbage and release
// device caches. It cannot fail and must be called after every batch.
func Clean(dev Device, logger observability.Logger) {
	start := time.Now()
	runtime.GC()
	if dev != nil {
		dev.FreeCache()
	}
	if logger != nil {
		logger.Debug("memory cleaned", observability.Duration(observability.MetricGCTime, time.Since(start)))
	}
}

// CleanIfLow cleans only when the device's total memory does not exceed
// thresholdBytes. Small devices need the reclaim between the batched and
// per-region phases; large ones can skip the pause. Unknown capacity counts
// as large.
func CleanIfLow(dev Device, thresholdBytes uint64, logger observability.Logger) {
	if dev == nil {
		return
	}
	total, err := dev.TotalMemory()
	if err != nil || total > thresholdBytes {
		return
	}
	start := time.Now()
	Clean(dev, nil)
	if logger != nil {
		logger.Info("gc time", observability.Duration(observability.MetricGCTime, time.Since(start)))
	}
}

// GiB converts a gibibyte count to bytes.
func GiB(n uint64) uint64 { return n << 30 }
