//go:build statsview
// +build statsview

package main

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// startStats serves runtime charts on addr until the process exits.
func startStats(addr string) error {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	go statsview.New().Start()
	return nil
}
