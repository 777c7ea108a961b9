// seehuhn.de/go/obj - a library for reading and writing Wavefront OBJ files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile writes CPU and memory profiles for command line tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler collects the profiles requested on the command line.
type Profiler struct {
	cpuFile    *os.File
	memProfile string
}

// Start begins CPU profiling, if cpuProfile is non-empty.  If memProfile is
// non-empty, an allocation profile is written there when Stop is called.
// The caller must call Stop before the program exits.
func Start(cpuProfile, memProfile string) (*Profiler, error) {
	p := &Profiler{memProfile: memProfile}
	if cpuProfile != "" {
		fd, err := os.Create(cpuProfile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		err = pprof.StartCPUProfile(fd)
		if err != nil {
			fd.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
		p.cpuFile = fd
	}
	return p, nil
}

// Stop ends CPU profiling and writes the memory profile.
func (p *Profiler) Stop() error {
	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpuFile.Close())
		p.cpuFile = nil
	}
	if p.memProfile != "" {
		errs = append(errs, writeAllocs(p.memProfile))
		p.memProfile = ""
	}
	return errors.Join(errs...)
}

func writeAllocs(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		fd.Close()
		return errors.New("could not lookup memory profile")
	}
	err = allocs.WriteTo(fd, 0)
	if err != nil {
		fd.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return fd.Close()
}
