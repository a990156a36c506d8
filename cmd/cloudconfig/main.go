package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-cloud-config/internal/cli"
	"github.com/MKhiriev/go-cloud-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	rootCmd := cli.NewRootCommand(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
