//go:build !tinygo

package critsec

func platformController() Controller { return NewSimController(MaskEnabled) }
