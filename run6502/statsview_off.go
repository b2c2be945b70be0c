//go:build !statsview
// +build !statsview

package main

import "errors"

func startStats(addr string) error {
	return errors.New("run6502 was built without the statsview tag")
}
