// Package profiling wires optional CPU and memory profiling into the
// demo application.
package profiling

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts CPU profiling into the named file and returns
// a func that stops it. Failures are logged, not fatal: the app is
// still usable without a profile.
func DoCPUProfiling(filePath string) (stop func()) {
	file, err := osCreate(filePath)
	if err != nil {
		log.Printf("could not create CPU profile %q: %v", filePath, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(file); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = file.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := file.Close(); err != nil {
			log.Printf("failed to close CPU profile %q: %v", filePath, err)
		}
	}
}

// DoMemProfiling returns a func that writes a heap profile to the
// named file; call it right before exiting.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		file, err := osCreate(filePath)
		if err != nil {
			log.Printf("could not create memory profile %q: %v", filePath, err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close memory profile %q: %v", filePath, err)
			}
		}()
		runtime.GC()
		if err := pprofWriteHeapProfile(file); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
