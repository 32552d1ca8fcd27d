package main

import (
	"os"

	"github.com/vfg2006/sales-dashboard-api/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
