// Package bbytes reads the big-endian fields DCX containers are made of.
package bbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	MagicSize = 4
	IntSize   = 4
)
