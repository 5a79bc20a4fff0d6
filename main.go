package main

import "github.com/danielhkuo/heart-risk/cmd"

func main() {
	cmd.Execute()
}
