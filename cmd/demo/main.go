// Command demo runs every workflow once through the gateway and prints the
// responses. With BACKEND_URL set it exercises a live backend; without it the
// responses are simulated in process, artificial latency included.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/config"
	"github.com/greenpulse/greenpulse/internal/gateway"
	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/repository"
	"github.com/greenpulse/greenpulse/internal/service"
	"github.com/greenpulse/greenpulse/internal/simulate"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	src := simulate.NewSource(cfg.SimulationSeed)
	svc := service.NewService(src, repository.NewResultStore(cfg.ResultTTL), logger)
	client := gateway.NewClient(cfg.BackendURL, svc, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	status, err := client.GetSystemStatus(ctx)
	if err != nil {
		logger.Fatalf("system status: %v", err)
	}
	printJSON("system_status", status)

	credit, err := client.AssessCredit(ctx, models.CreditAssessmentRequest{
		EntityID: "ACME-CORP", EntityType: "company",
	})
	if err != nil {
		logger.Fatalf("credit assessment: %v", err)
	}
	printJSON("credit_assessment", credit)

	portfolio, err := client.OptimizePortfolio(ctx, models.PortfolioOptimizationRequest{
		Capital: 100000, RiskTolerance: "moderate", TargetReturn: 0.08,
	})
	if err != nil {
		logger.Fatalf("portfolio optimization: %v", err)
	}
	printJSON("portfolio_optimization", portfolio)

	loan, err := client.ApplyMicroLoan(ctx, models.MicroLoanRequest{
		ApplicantID: "APP-1001", Amount: 5000, Purpose: "business",
	})
	if err != nil {
		logger.Fatalf("micro loan: %v", err)
	}
	printJSON("micro_loan", loan)

	report, err := client.CheckGreenwashing(ctx, models.GreenwashingCheckRequest{
		CompanyID: "GREENCO",
	})
	if err != nil {
		logger.Fatalf("greenwashing check: %v", err)
	}
	printJSON("greenwashing_check", report)
}

func printJSON(label string, v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	os.Stdout.WriteString("=== " + label + " ===\n")
	os.Stdout.Write(out)
	os.Stdout.WriteString("\n")
}
