package main

import "ksrtc_booker/presentation/cli"

func main() {
	cli.Execute()
}
