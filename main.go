/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "nsgen/cmd"

func main() {
	cmd.Execute()
}
