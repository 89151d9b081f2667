/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package plog

import (
	gosysinfo "github.com/elastic/go-sysinfo"
)

// HostFingerprint logs one debug line describing the host OS/architecture
// the iterator is about to traverse a working directory on.
//   - invoked once, at workdir-iterator construction time
//   - swallows go-sysinfo errors: a missing fingerprint is never fatal
func HostFingerprint(iteratorID string) {
	if !Debug {
		return
	}
	host, err := gosysinfo.Host()
	if err != nil {
		D("gititer %s: workdir host fingerprint unavailable: %s", iteratorID, err)
		return
	}
	info := host.Info()
	D("gititer %s: workdir host os=%s arch=%s hostname=%s",
		iteratorID, info.OS.Platform, info.Architecture, info.Hostname)
}
