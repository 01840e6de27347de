// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is an emulation of the three rotor Enigma I and M3
// cipher machines, including the plugboard, ring settings and turnover
// notches.
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}
