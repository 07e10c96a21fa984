package pprof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// The engine stays bare and in release mode so gin never writes to stdout.
func run() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)
	addr := fmt.Sprintf("localhost:%d", 1024+rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff-1024))
	if err := router.Run(addr); err != nil {
		time.Sleep(time.Second)
		run()
	}
}

func init() {
	go run()
}
