package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MusikPolice/ofxcat-sub001/cmd/categories"
	"github.com/MusikPolice/ofxcat-sub001/cmd/categorize"
	"github.com/MusikPolice/ofxcat-sub001/cmd/export"
	"github.com/MusikPolice/ofxcat-sub001/cmd/root"
)

func init() {
	// Environment variables from .env feed the viper config layer.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
