// Package main provides recipetool, a small CLI embedding of the recipe
// normalization and scaling engine. It reads a recipe JSON payload from a
// file (or stdin with "-") and prints the engine's output, which is
// useful for inspecting what the app would render for a given backend
// response.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	apprecipe "github.com/forkful/kitchen/internal/application/recipe"
	"github.com/forkful/kitchen/internal/infrastructure/config"
	"github.com/forkful/kitchen/internal/ports/inbound"
	"github.com/forkful/kitchen/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	scaleFactor float64
)

var rootCmd = &cobra.Command{
	Use:   "recipetool",
	Short: "Inspect normalized and scaled recipe payloads",
	Long: `recipetool runs backend recipe payloads through the normalization,
scaling and cooking-session engine and prints the result as JSON.`,
	SilenceUsage: true,
}

var stepsCmd = &cobra.Command{
	Use:   "steps <payload.json>",
	Short: "Print the normalized instruction steps of a recipe payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := assemble(args[0], 1.0)
		if err != nil {
			return err
		}
		return printJSON(detail.Steps)
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale <payload.json>",
	Short: "Print the full recipe detail at a scale factor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := assemble(args[0], scaleFactor)
		if err != nil {
			return err
		}
		return printJSON(detail)
	},
}

var nutritionCmd = &cobra.Command{
	Use:   "nutrition <payload.json>",
	Short: "Print the scaled nutrition of a recipe payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := assemble(args[0], scaleFactor)
		if err != nil {
			return err
		}
		if detail.Nutrition == nil {
			fmt.Fprintln(os.Stderr, "recipe carries no nutritional info")
			return nil
		}
		return printJSON(detail.Nutrition)
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session <payload.json>",
	Short: "Print a fresh cooking-session snapshot for a recipe payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}
		detail, err := assembleWith(service, args[0], 1.0)
		if err != nil {
			return err
		}
		snapshot, err := service.StartCooking(cmd.Context(), detail.ID, len(detail.Steps))
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().Float64Var(&scaleFactor, "scale", 0, "scale factor (0 uses the configured default)")
	rootCmd.AddCommand(stepsCmd, scaleCmd, nutritionCmd, sessionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildService() (inbound.RecipeDetailService, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Environment == "development",
	})
	if err != nil {
		return nil, err
	}

	if scaleFactor == 0 {
		scaleFactor = cfg.Scaling.DefaultFactor
	}

	log.Debug("recipetool configured",
		zap.String("environment", cfg.App.Environment),
		zap.Float64("scale_factor", scaleFactor),
	)

	return apprecipe.NewDetailService(log), nil
}

func assemble(path string, factor float64) (*inbound.RecipeDetailDTO, error) {
	service, err := buildService()
	if err != nil {
		return nil, err
	}
	return assembleWith(service, path, factor)
}

func assembleWith(service inbound.RecipeDetailService, path string, factor float64) (*inbound.RecipeDetailDTO, error) {
	payload, err := readPayload(path)
	if err != nil {
		return nil, err
	}
	if factor == 0 {
		factor = scaleFactor
	}
	return service.AssembleDetail(rootCmd.Context(), payload, factor)
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
