package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	cli := &application{}
	defer cli.sync()

	if err := cli.rootCommand().Execute(); err != nil {
		cli.logger().Error("command failed", zap.Error(err))
		cli.sync()
		os.Exit(1)
	}
}
