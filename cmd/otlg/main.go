package main

import "github.com/OpenTraceLab/OpenTraceLibGen/cmd/otlg/cmd"

func main() {
	cmd.Execute()
}
