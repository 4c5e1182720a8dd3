package main

import "liftlog/cmd/liftlog"

func main() {
	liftlog.Execute()
}
