package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/pprof/profile"
)

// Result is what we keep from one profiled run
type Result struct {
	Name     string
	Duration time.Duration
	Samples  int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s (%d samples)", r.Name, r.Duration, r.Samples)
}

// Run records a CPU profile of fn into path, then reads it back.
// Only one CPU profile can be active per process, so Run must not be called concurrently.
func Run(path string, fn func()) (*profile.Profile, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	fn()
	pprof.StopCPUProfile()
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close profile file: %w", err)
	}
	return GetProfileDataFromFile(path)
}

// GetProfileDataFromFile parses a pprof profile written earlier.
func GetProfileDataFromFile(path string) (*profile.Profile, error) {
	rawProfile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer rawProfile.Close()
	prof, err := profile.Parse(rawProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return prof, nil
}

// Summarize pulls the duration and sample count out of a parsed profile.
func Summarize(name string, prof *profile.Profile) Result {
	return Result{
		Name:     name,
		Duration: time.Duration(prof.DurationNanos),
		Samples:  len(prof.Sample),
	}
}

// Compare describes how much faster or slower candidate was than baseline.
func Compare(baseline, candidate Result) string {
	if candidate.Duration < baseline.Duration {
		return fmt.Sprintf("%s was faster than %s by %s", candidate.Name, baseline.Name, baseline.Duration-candidate.Duration)
	}
	return fmt.Sprintf("%s was slower than %s by %s", candidate.Name, baseline.Name, candidate.Duration-baseline.Duration)
}
