package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/axon-report-cli/internal/commands"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	rootCmd := commands.NewReportCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(clierrors.ExitCodeFor(err))
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)
}
