package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	view "github.com/awwaw/contiguous-view"
	"github.com/awwaw/contiguous-view/pkg/frame"
	"go.uber.org/zap"
)

// Memory-profiling harness: hammers the derived-view operations and the
// frame splitter, then writes a heap profile. The derived-view operations
// must stay allocation-free; anything of theirs showing up in mem.prof is a
// regression.
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	go func() {
		logger.Info("pprof listening", zap.String("addr", "localhost:6060"))
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			logger.Warn("pprof server stopped", zap.Error(err))
		}
	}()

	f, err := os.Create("mem.prof")
	if err != nil {
		logger.Fatal("create profile", zap.Error(err))
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	storage := make([]uint64, 1<<16)
	for i := range storage {
		storage[i] = uint64(i)
	}

	var sink uint64
	v := view.FromSlice(storage)
	for i := 0; i < 10000; i++ {
		w := v.Subview(i%1024, 4096)
		sink += *w.First(16).Back()
		sink += uint64(w.Bytes().Size())
		sink += uint64(*view.Reinterpret[uint32](w.Last(256)).At(7))
	}

	buf := frame.Append(nil, []byte("payload-a"))
	buf = frame.Append(buf, []byte("payload-b"))
	for i := 0; i < 10000; i++ {
		s := frame.NewSplitter(buf)
		for s.More() {
			p, err := s.Next()
			if err != nil {
				logger.Fatal("split", zap.Error(err))
			}
			sink += uint64(p.Size())
		}
	}

	if err := pprof.WriteHeapProfile(f); err != nil {
		logger.Fatal("write profile", zap.Error(err))
	}
	logger.Info("heap profile written", zap.String("path", "mem.prof"), zap.Uint64("sink", sink))
	time.Sleep(5 * time.Minute)
}
