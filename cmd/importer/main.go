package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/SahakyanGor98/iqos/internal/config"
	"github.com/SahakyanGor98/iqos/internal/db"
	"github.com/SahakyanGor98/iqos/internal/importer"
	productrepo "github.com/SahakyanGor98/iqos/internal/repository/product"
)

func main() {
	devicesPath := flag.String("devices", "", "path to a device feed JSON file")
	sticksPath := flag.String("sticks", "", "path to a sticks feed JSON file")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if *devicesPath == "" && *sticksPath == "" {
		logger.Fatal("nothing to import: pass -devices and/or -sticks")
	}

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	im := importer.New(productrepo.NewPostgres(pool, logger), logger)

	if *devicesPath != "" {
		f, err := os.Open(*devicesPath)
		if err != nil {
			logger.Fatalf("open device feed: %v", err)
		}
		n, err := im.ImportDevices(ctx, f)
		f.Close()
		if err != nil {
			logger.Fatalf("import devices: %v", err)
		}
		logger.Printf("imported %d devices", n)
	}

	if *sticksPath != "" {
		f, err := os.Open(*sticksPath)
		if err != nil {
			logger.Fatalf("open sticks feed: %v", err)
		}
		n, err := im.ImportSticks(ctx, f)
		f.Close()
		if err != nil {
			logger.Fatalf("import sticks: %v", err)
		}
		logger.Printf("imported %d sticks", n)
	}
}
