package main

import (
	"flag"
	"fmt"
	"invsearch/pkg/config"
	"invsearch/pkg/engine"
	"invsearch/pkg/parser"
	"log"
	"os"
	"strings"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	saveFile := flag.String("db", "", "save file used by save and update")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] [-db file] file1.txt [file2.txt ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v\n", err)
	}
	if *saveFile != "" {
		cfg.SaveFile = *saveFile
	}

	files, rejected := parser.ValidateFiles(flag.Args(), parser.ValidateOptions{
		Extension:             cfg.Extension,
		NearDuplicateDistance: cfg.NearDuplicateDistance,
	})
	log.Printf("Files in the list: %s. Rejected: %d.\n", strings.Join(files.Names(), " "), len(rejected))

	ng, err := engine.NewEngine(cfg, files)
	if err != nil {
		files.Close()
		log.Fatal(err)
	}
	defer ng.Close()

	ng.Run()
}
