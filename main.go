package main

import "RealtyAPI/cmd"

func main() {
	cmd.Execute()
}
