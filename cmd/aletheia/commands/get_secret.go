package commands

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
)

// RunGetSecret fetches a stored secret and resolves its plaintext. The value
// is written raw to the writer or to the --output file; the json format
// wraps the value in base64 together with the name and the key route.
//
// Requirements: The chest's KMS key and bucket must be reachable.
func RunGetSecret(
	ctx context.Context,
	chestUseCase chestUsecase.ChestUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	output string,
	format string,
) error {
	if name == "" {
		return fmt.Errorf("secret name is required")
	}

	logger.Info("fetching secret", slog.String("name", name))

	secret, err := chestUseCase.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get secret: %w", err)
	}

	plaintext, err := secret.Plaintext(ctx)
	if err != nil {
		return fmt.Errorf("failed to decrypt secret: %w", err)
	}

	// Write to a file when requested. The payload never goes through the log.
	if output != "" {
		if err := os.WriteFile(output, plaintext, 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(writer, "Secret written to %s\n", output)
		logger.Info("secret written to file",
			slog.String("name", name),
			slog.String("output", output),
		)
		return nil
	}

	// Output result based on format
	if format == "json" {
		outputGetJSON(writer, secret.Name(), secret.Route().String(), plaintext)
	} else {
		_, _ = writer.Write(plaintext)
	}

	logger.Info("secret fetched successfully", slog.String("name", name))

	return nil
}

// outputGetJSON outputs the secret in JSON format with a base64-encoded value.
func outputGetJSON(writer io.Writer, name, key string, plaintext []byte) {
	result := map[string]interface{}{
		"name":  name,
		"key":   key,
		"value": base64.StdEncoding.EncodeToString(plaintext),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
