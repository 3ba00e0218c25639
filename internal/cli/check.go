package cli

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/storefrontqa/relatedcheck/internal/config"
	"github.com/storefrontqa/relatedcheck/internal/driver"
	"github.com/storefrontqa/relatedcheck/internal/models"
	"github.com/storefrontqa/relatedcheck/internal/services"
	"github.com/storefrontqa/relatedcheck/internal/validation"
)

// CheckDependencies holds all dependencies needed for a check run
type CheckDependencies struct {
	Rules  models.ValidationRuleSet
	Target config.TargetConfig
	// RunService is nil when run history is not being recorded
	RunService services.RunService
}

// RunCheck launches a browser, captures the related-products section of the
// target page and evaluates it against the configured rules. It returns the
// report so the command can choose an exit code; the error covers browser
// and configuration failures, not a failing report.
func RunCheck(deps CheckDependencies) (*models.ValidationReport, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(deps.Target.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	pageDriver := driver.NewPageDriver(page, deps.Target)
	if err := pageDriver.OpenProduct(); err != nil {
		return nil, err
	}

	snapshot, noResults, err := pageDriver.CaptureRelatedProducts()
	if err != nil {
		return nil, err
	}
	log.Printf("Captured %d related products from %s", len(snapshot), deps.Target.ProductURL)

	report, err := validation.Evaluate(snapshot, deps.Rules, noResults)
	if err != nil {
		return nil, err
	}

	logReport(deps.Target.ProductURL, report)

	if deps.RunService != nil {
		run, err := deps.RunService.RecordRun(deps.Target.ProductURL, deps.Rules, report)
		if err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		log.Printf("Recorded run %s", run.Reference)
	}

	return report, nil
}

// logReport writes a one-line verdict plus one line per failing check
func logReport(targetURL string, report *models.ValidationReport) {
	if report.OverallPass {
		log.Printf("PASS %s: %d related products within rules", targetURL, report.Section.ItemCount)
		return
	}

	log.Printf("FAIL %s:", targetURL)
	for _, reason := range report.FailureReasons() {
		log.Printf("  %s", reason)
	}
}
