package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/VENUCODE/paint-ai/internal/application"
	config "github.com/VENUCODE/paint-ai/internal/infrastructure/configs"
)

func main() {

	envFile := flag.String("env", ".env", "optional dotenv file merged into the environment")
	flag.Parse()

	cfg, err := config.LoadConfigs(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	app := application.App{Cfg: cfg}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}

}
