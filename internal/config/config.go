package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogFile        string
	LogLevel       logrus.Level
	StartingIncome decimal.Decimal
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	env := Config{
		LogFile:        "budget-buddy.log",
		LogLevel:       logrus.InfoLevel,
		StartingIncome: decimal.Zero,
	}

	envLogFile := os.Getenv("BUDGET_LOG_FILE")
	envLogLevel := os.Getenv("BUDGET_LOG_LEVEL")
	envStartingIncome := os.Getenv("BUDGET_STARTING_INCOME")

	if len(envLogFile) != 0 {
		env.LogFile = envLogFile
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, err
		}
		env.LogLevel = level
	}

	if len(envStartingIncome) != 0 {
		income, err := decimal.NewFromString(envStartingIncome)
		if err != nil {
			return nil, err
		}
		env.StartingIncome = income
	}

	return &env, nil
}
