// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries the linker-injected build metadata shown by the
// client's about window and printed by both binaries on start.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are reported as
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
