package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
)

// RunDeleteSecret removes a stored secret from the chest.
//
// Requirements: The chest's KMS key and bucket must be reachable.
func RunDeleteSecret(
	ctx context.Context,
	chestUseCase chestUsecase.ChestUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	format string,
) error {
	if name == "" {
		return fmt.Errorf("secret name is required")
	}

	logger.Info("deleting secret", slog.String("name", name))

	if err := chestUseCase.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputDeleteJSON(writer, name)
	} else {
		_, _ = fmt.Fprintf(writer, "Successfully deleted secret %q\n", name)
	}

	logger.Info("secret deleted successfully", slog.String("name", name))

	return nil
}

// outputDeleteJSON outputs the result in JSON format for machine consumption.
func outputDeleteJSON(writer io.Writer, name string) {
	result := map[string]interface{}{
		"name":    name,
		"deleted": true,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
