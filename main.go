package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/glebschkv/phone-pet-paradise/internal/app"
	"github.com/glebschkv/phone-pet-paradise/internal/appicon"
	"github.com/glebschkv/phone-pet-paradise/internal/log"
	"github.com/glebschkv/phone-pet-paradise/internal/promo"
	"github.com/glebschkv/phone-pet-paradise/internal/splash"
)

func main() {
	root := flag.String("root", ".", "project root containing public/ and ios/")
	debug := flag.Bool("debug", false, "enable per-stage debug logging")
	noPromo := flag.Bool("no-promo", false, "skip the social share card")
	flag.Parse()

	log.Init(*debug)

	rootDir, err := filepath.Abs(*root)
	if err != nil {
		log.Errorf("resolve root %q: %v", *root, err)
		os.Exit(1)
	}

	generators := []app.Generator{
		splash.NewGenerator(rootDir),
		appicon.NewGenerator(rootDir),
	}
	if *noPromo {
		generators = append(generators, app.NoopGenerator{Label: "promo"})
	} else {
		generators = append(generators, promo.NewGenerator(rootDir))
	}

	a := app.New(generators...)
	if err := a.Run(context.Background()); err != nil {
		log.Errorf("asset generation failed: %v", err)
		os.Exit(1)
	}
	log.Infof("done, assets written under %s", rootDir)
}
