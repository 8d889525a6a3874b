package main

import "i18next-parser/cmd"

func main() {
	cmd.Execute()
}
