package main

import (
	"flag"
	"os"

	"reqforge-ai-be/pkg/demodata"

	"github.com/fatih/color"
)

func main() {
	outDir := flag.String("out", "demo-data", "directory to write the demo project into")
	flag.Parse()

	color.Cyan("ReqForge AI - Demo Data Generator\n")

	summary, err := demodata.Generate(*outDir)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}

	for _, step := range summary.Steps {
		if step.Name == "directory" {
			color.Yellow("Created directory: %s", step.Path)
			continue
		}
		color.Green("%-20s %3d -> %s", step.Name, step.Count, step.Path)
	}

	color.Cyan("\nDone. POST processed/generate_request.json to /api/ai/generate to try it out.")
}
