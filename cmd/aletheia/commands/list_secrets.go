package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	chestDomain "github.com/petrilli/aletheia/internal/chest/domain"
	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
)

// RunListSecrets lists the secrets stored in the chest, optionally filtered
// by a name prefix. Listing never decrypts anything.
//
// Requirements: The chest's KMS key and bucket must be reachable.
func RunListSecrets(
	ctx context.Context,
	chestUseCase chestUsecase.ChestUseCase,
	logger *slog.Logger,
	writer io.Writer,
	prefix string,
	limit int,
	format string,
) error {
	if limit < 1 {
		return fmt.Errorf("limit must be a positive number, got: %d", limit)
	}

	logger.Info("listing secrets",
		slog.String("prefix", prefix),
		slog.Int("limit", limit),
	)

	infos, err := chestUseCase.List(ctx, prefix, limit)
	if err != nil {
		return fmt.Errorf("failed to list secrets: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputListJSON(writer, infos)
	} else {
		outputListText(writer, infos)
	}

	logger.Info("secrets listed successfully", slog.Int("count", len(infos)))

	return nil
}

// outputListText outputs the secrets in human-readable text format.
func outputListText(writer io.Writer, infos []chestDomain.SecretInfo) {
	if len(infos) == 0 {
		_, _ = fmt.Fprintln(writer, "No secrets found")
		return
	}

	_, _ = fmt.Fprintf(writer, "%-40s %10s  %s\n", "NAME", "SIZE", "UPDATED")
	for _, info := range infos {
		_, _ = fmt.Fprintf(writer, "%-40s %10d  %s\n",
			info.Name,
			info.Size,
			info.UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	_, _ = fmt.Fprintf(writer, "\n%d secret(s)\n", len(infos))
}

// outputListJSON outputs the secrets in JSON format for machine consumption.
func outputListJSON(writer io.Writer, infos []chestDomain.SecretInfo) {
	data := make([]map[string]interface{}, 0, len(infos))
	for _, info := range infos {
		data = append(data, map[string]interface{}{
			"name":       info.Name,
			"size":       info.Size,
			"updated_at": info.UpdatedAt,
		})
	}

	result := map[string]interface{}{
		"data":  data,
		"count": len(infos),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
