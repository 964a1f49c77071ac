// FILE: example/gnet/main.go
package main

import (
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/funnel"
	"github.com/lixenwraith/funnel/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	funnel.Info("echo server started", funnel.Fields{"addr": "tcp://127.0.0.1:9000"})
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := funnel.NewBuilder().
		ConsoleTarget("stderr").
		ConsoleLevelString("debug").
		Build()
	if err != nil {
		panic(err)
	}
	funnel.SetShared(logger)

	gnetAdapter := compat.NewGnetAdapter(logger, compat.WithFieldExtraction(true))

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		funnel.Error("gnet stopped", funnel.Fields{"error": err})
		os.Exit(1)
	}
}
