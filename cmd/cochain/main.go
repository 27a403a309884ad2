package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/plan-systems/klog"

	"github.com/cochainlab/cochain/flavor"
	"github.com/cochainlab/cochain/internal/bot"
	"github.com/cochainlab/cochain/internal/config"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	flag.Parse()
	defer klog.Flush()

	// .env is optional; the token may already be exported.
	if err := godotenv.Load(); err == nil {
		klog.Infof("loaded .env")
	}

	cfg, path, err := config.Load()
	if err != nil {
		klog.Fatalf("load config: %v", err)
	}
	if path != "" {
		klog.Infof("config loaded from %s", path)
	}

	token, err := config.Token()
	if err != nil {
		klog.Fatalf("%v", err)
	}

	seed := cfg.FlavorSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := bot.NewDispatcher(cfg.Prefix, flavor.New(seed))

	b, err := bot.New(token, d, cfg.Presence)
	if err != nil {
		klog.Fatalf("create bot: %v", err)
	}
	if err = b.Open(); err != nil {
		klog.Fatalf("connect: %v", err)
	}
	klog.Infof("cochain is running; press Ctrl+C to exit")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err = b.Close(); err != nil {
		klog.Errorf("close session: %v", err)
	}
}
