package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-buddy/internal/config"
	"github.com/carson-networks/budget-buddy/internal/logging"
	"github.com/carson-networks/budget-buddy/internal/operator"
	"github.com/carson-networks/budget-buddy/internal/service"
	"github.com/carson-networks/budget-buddy/internal/storage"
	"github.com/carson-networks/budget-buddy/internal/ui"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger, closeLog := logging.SetupLogging(envConfig.LogFile, envConfig.LogLevel)
	defer closeLog()
	logger.Info("budget-buddy starting")

	store := storage.NewStore()
	if envConfig.StartingIncome.IsPositive() {
		writer := store.Write()
		writer.SetIncome(envConfig.StartingIncome)
		if err := writer.Commit(); err != nil {
			logger.WithError(err).Fatal("storage.seed income")
			return
		}
	}

	delegator := operator.NewOperatorDelegator(store)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewBudgetService(store, delegator, logger)

	program := tea.NewProgram(ui.NewModel(svc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Error("tui.Run")
		os.Exit(1)
	}

	logger.Debug(spew.Sdump(store.Snapshot()))
	logger.Info("budget-buddy shutting down")
}
