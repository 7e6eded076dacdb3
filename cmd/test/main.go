// Command persona-smoke exercises a running interview persona server.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagURL     string
	flagTimeout time.Duration
	flagText    string
	flagRaw     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "persona-smoke",
	Short:         "Smoke tests for the interview persona server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printHeader("Interview Persona Server - Test Suite")
		fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, flagURL, colorReset)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check GET /health",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck("Testing Health Check Endpoint", "Health check passed", newClient().checkHealth)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Analyze a transcript from a file, stdin or --text",
	Long: `Send an interview transcript to POST /api/gemini and print the persona.

Examples:
  # Analyze a file
  persona-smoke analyze interview.txt

  # Analyze from stdin
  cat interview.txt | persona-smoke analyze -

  # Analyze inline text against another server
  persona-smoke analyze --url http://localhost:8080 --text "I keep getting lost in the menu"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every check",
	RunE:  runAll,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "http://localhost:3000", "Base URL of the server")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 90*time.Second, "HTTP client timeout")

	analyzeCmd.Flags().StringVarP(&flagText, "text", "t", "", "Transcript text")
	analyzeCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the raw response body")

	rootCmd.AddCommand(healthCmd, analyzeCmd, allCmd)
}

func newClient() *TestClient {
	return NewTestClient(flagURL, flagTimeout)
}

func runCheck(title, success string, fn func() error) error {
	printTestHeader(title)
	if err := fn(); err != nil {
		printError(err.Error())
		return err
	}
	printSuccess(success)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	transcript, err := readTranscript(cmd.InOrStdin(), args)
	if err != nil {
		printError(err.Error())
		return err
	}

	printTestHeader("Testing Interview Analysis")
	result, body, err := newClient().analyze(transcript)
	if err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Analysis completed successfully")
	printPersona(result)
	if flagRaw {
		printJSON(body)
	}
	return nil
}

func readTranscript(stdin io.Reader, args []string) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	if len(args) == 0 {
		return sampleTranscript, nil
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("transcript is empty")
	}
	return string(data), nil
}

func runAll(cmd *cobra.Command, args []string) error {
	tc := newClient()

	tests := []struct {
		name    string
		success string
		fn      func() error
	}{
		{"Testing Health Check Endpoint", "Health check passed", tc.checkHealth},
		{"Testing /api/test Endpoint", "Test endpoint is working", tc.checkTestEndpoint},
		{"Testing CORS Preflight", "CORS preflight accepted", tc.checkCORS},
		{"Testing Missing Prompt", "Empty prompt rejected with 400", tc.checkMissingPrompt},
		{"Testing Interview Analysis", "Analysis returned a persona", func() error {
			_, _, err := tc.analyze(sampleTranscript)
			return err
		}},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if runCheck(test.name, test.success, test.fn) == nil {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
